package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	c := New[string, int]()

	calls := 0
	v, hit, err := c.GetOrCreate("k", func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil || hit || v != 42 {
		t.Fatalf("first GetOrCreate = (%d, %v, %v), want (42, false, nil)", v, hit, err)
	}

	v, hit, err = c.GetOrCreate("k", func() (int, error) {
		calls++
		return 99, nil
	})
	if err != nil || !hit || v != 42 {
		t.Fatalf("second GetOrCreate = (%d, %v, %v), want (42, true, nil)", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("create ran %d times, want 1", calls)
	}
}

func TestGetOrCreateError(t *testing.T) {
	c := New[string, int]()

	boom := errors.New("boom")
	_, _, err := c.GetOrCreate("k", func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed create was stored: Len() = %d", c.Len())
	}

	// A later successful create for the same key still works.
	v, hit, err := c.GetOrCreate("k", func() (int, error) { return 7, nil })
	if err != nil || hit || v != 7 {
		t.Fatalf("GetOrCreate after failure = (%d, %v, %v)", v, hit, err)
	}
}

func TestClear(t *testing.T) {
	c := New[string, int]()
	c.GetOrCreate("a", func() (int, error) { return 1, nil })
	c.GetOrCreate("b", func() (int, error) { return 2, nil })

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get after Clear found an entry")
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	c := New[int, *int]()

	var wg sync.WaitGroup
	results := make([]*int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, _ := c.GetOrCreate(1, func() (*int, error) {
				n := i
				return &n, nil
			})
			results[i] = v
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent GetOrCreate produced distinct values for one key")
		}
	}
}

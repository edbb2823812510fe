package kanjivg

import (
	"reflect"
	"testing"
)

func radicalFixture() []GroupRecord {
	return []GroupRecord{
		{ID: "g0", Element: "位"},
		{ID: "g1", Radical: RadicalTradit, StrokeNumbers: []int{1, 2}},
		{ID: "g2", Radical: RadicalNelson, StrokeNumbers: []int{3}},
		{ID: "g3", StrokeNumbers: []int{4, 5}},
	}
}

func TestSelectRadicalsAutoDetect(t *testing.T) {
	tests := []struct {
		name    string
		groups  []GroupRecord
		wantIDs []string
	}{
		{
			// No general radical: tradit is next in priority. Nelson
			// is never auto-selected.
			name:    "tradit over nelson",
			groups:  radicalFixture(),
			wantIDs: []string{"g1"},
		},
		{
			name: "general wins over tradit",
			groups: []GroupRecord{
				{ID: "a", Radical: RadicalTradit},
				{ID: "b", Radical: RadicalGeneral},
			},
			wantIDs: []string{"b"},
		},
		{
			name: "nelson alone selects nothing",
			groups: []GroupRecord{
				{ID: "a", Radical: RadicalNelson},
			},
			wantIDs: nil,
		},
		{
			name:    "no radicals at all",
			groups:  []GroupRecord{{ID: "a"}},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, g := range SelectRadicals(tt.groups, nil) {
				ids = append(ids, g.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("SelectRadicals = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestSelectRadicalsAllowList(t *testing.T) {
	groups := radicalFixture()

	// An explicit allow-list is pure membership, nelson included.
	var ids []string
	for _, g := range SelectRadicals(groups, []RadicalKind{RadicalNelson}) {
		ids = append(ids, g.ID)
	}
	if want := []string{"g2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("allow nelson: got %v, want %v", ids, want)
	}

	// An empty (non-nil) allow-list selects nothing.
	if got := SelectRadicals(groups, []RadicalKind{}); got != nil {
		t.Errorf("empty allow-list: got %v, want none", got)
	}
}

func TestRadicalStrokeNumbers(t *testing.T) {
	covered := RadicalStrokeNumbers(radicalFixture(), nil)
	if want := map[int]bool{1: true, 2: true}; !reflect.DeepEqual(covered, want) {
		t.Errorf("RadicalStrokeNumbers = %v, want %v", covered, want)
	}
}

// Package cache provides the generic record cache behind the parser.
//
// A Cache[K, V] is a thread-safe map with insert-if-absent semantics:
//
//	c := cache.New[string, *Record]()
//	v, hit, err := c.GetOrCreate("key", build)
//
// There is deliberately no eviction policy. Parsed records are small and
// invalidation belongs to the owner: Clear drops every entry at once.
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache

// Package syncmap offers a lightweight, generic, concurrency-safe map that
// remembers insertion order. Reads take a sync.RWMutex read lock so lookups
// from concurrent tool calls do not serialise.
package syncmap

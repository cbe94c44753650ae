// Package provider contains concrete core.Provider implementations. The
// InMemoryProvider is an exclusive-owner mutable collection that broadcasts
// every mutation as a fresh snapshot to any number of live subscribers. It
// is volatile by design: suitable for tests, examples and single-process
// applications, with durability left to the embedding host.
package provider

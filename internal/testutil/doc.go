// Package testutil contains small fluent helpers for constructing recipes
// and collections in tests. Production code must not depend on it.
package testutil

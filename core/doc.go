// Package core provides the foundational domain types and interfaces used by
// recipeflow. It defines the core abstractions for:
//
//   - Recipes (the domain entity, identified by a UUID)
//   - Collections (ordered, unique-keyed snapshot values of recipes)
//   - Providers (pluggable live sources of collection snapshots)
//   - Sentinel errors shared across provider implementations
//
// The package intentionally keeps implementation concerns (the live in-memory
// provider, the dispatch runtime, logging) out of scope, exposing a small
// interface so callers can construct the runtime with a live, fake or test
// provider without any global registry.
package core

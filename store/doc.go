// Package store implements the unidirectional dispatch runtime: a Store owns
// the current state, serializes reducer invocations, launches the effects a
// reducer describes as cancellable goroutines, and routes any action an
// effect sends back through the same serialized dispatch path.
//
// # Core Responsibilities
//
// State Ownership:
//   - The Store is the exclusive writer of its state value
//   - Commits happen strictly in dispatch order (linearized)
//   - Readers observe committed states via State or a Changes subscription
//
// Effect Scheduling:
//   - Each effect runs on its own goroutine with a context derived from the
//     store lifetime
//   - Running effects are tracked per group, enabling targeted cancellation
//     without disturbing unrelated in-flight work
//   - Cancellation is idempotent and propagates into any provider
//     subscription the effect is consuming
//
// The reducer itself never blocks and never performs I/O; every side effect
// it wants is described as an Effect value for the Store to run.
package store

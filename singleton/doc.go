// Package singleton provides a small, type-indexed registry for single-instance values.
//
// Each type parameter T is an independent namespace holding at most one
// registration. A registration is one of:
//
//   - RegisterInstance: a pre-built value, created immediately
//   - RegisterLazy / RegisterLazyErr: a factory invoked on first access
//   - RegisterLazyHandle: a caller-owned *Lazy[T], shared with the registry
//
// State per type:
//
//	empty -> registered (not created) -> created -> empty
//
// Eager registrations skip "registered (not created)". Unregister and Dispose
// return a slot to empty; Dispose also invokes the instance's disposal
// capability (io.Closer, Disposer, or Dispose()) when it has one.
//
// Design goals:
//   - Lightweight: no dependency graph, scopes, keyed or multi-instance bindings.
//   - Explicit: registries are values passed around, so tests get isolation
//     by constructing a fresh one.
//   - Safe under concurrency: lazy construction runs exactly once even when
//     many goroutines race the first access.
//
// Typical usage:
//
//	reg := singleton.New(singleton.WithLogger(logger))
//
//	_ = singleton.RegisterLazy(reg, func() *Pool { return dial(cfg) })
//	_ = singleton.RegisterInstance(reg, &Clock{})
//
//	pool := singleton.GetInstance[*Pool](reg) // constructed here
//	defer singleton.Dispose[*Pool](reg)       // calls pool.Close()
//
// Registering a type twice fails with AlreadyRegisteredError whether or not
// the first registration was created; unregistering or disposing an empty
// slot fails with NotRegisteredError.
package singleton

// Package solo is a type-indexed singleton registry for Go.
//
// The registry is a lightweight alternative to a dependency-injection container:
// one slot per type, three registration strategies, and explicit disposal.
//
//   - singleton: the registry package (New, RegisterLazy, RegisterInstance,
//     RegisterLazyHandle, GetInstance, TryGetInstance, Resolve, Unregister, Dispose)
//   - examples/lifecycle: runnable end-to-end example with env config, slog
//     logging and optional OpenTelemetry metrics
//
// There is no dependency graph, no scopes and no reflection-based
// auto-registration. Wiring stays explicit in your composition root.
package solo

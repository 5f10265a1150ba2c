package singleton

import "reflect"

// typeKey returns the registry key for T. Interface types key on the
// interface itself, not on the dynamic type of a stored value.
func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// IsRegistered reports whether a slot exists for T, created or not.
func IsRegistered[T any](r *Registry) bool {
	if r == nil {
		return false
	}
	_, ok := r.lookup(typeKey[T]())
	return ok
}

// IsCreated reports whether a slot exists for T and its instance has been constructed.
func IsCreated[T any](r *Registry) bool {
	if r == nil {
		return false
	}
	acc, ok := r.lookup(typeKey[T]())
	return ok && acc.created()
}

// GetInstance returns the instance for T, constructing it on first access.
//
// It returns the zero value of T when no slot is registered or when
// construction fails. Use TryGetInstance or Resolve to tell those cases apart.
func GetInstance[T any](r *Registry) T {
	v, _ := Resolve[T](r)
	return v
}

// TryGetInstance is GetInstance with an explicit found flag.
//
// found is false when no slot is registered or construction failed.
func TryGetInstance[T any](r *Registry) (T, bool) {
	v, err := Resolve[T](r)
	return v, err == nil
}

// Resolve returns the instance for T, constructing it on first access.
//
// It returns:
//   - ErrNilRegistry if r is nil
//   - NotRegisteredError if no slot exists for T
//   - the factory error (or an ErrFactoryPanic wrap) if construction fails
func Resolve[T any](r *Registry) (T, error) {
	var zero T
	if r == nil {
		return zero, ErrNilRegistry
	}
	key := typeKey[T]()
	acc, ok := r.lookup(key)
	if !ok {
		return zero, NotRegisteredError{Type: key.String()}
	}
	ta := acc.(typedAccessor[T])
	if ta.created() {
		return ta.get(nil)
	}
	return ta.get(r.constructionHook(key))
}

// MustGetInstance returns the instance for T or panics with the Resolve error.
// Useful in main and tests where a missing singleton should fail fast.
func MustGetInstance[T any](r *Registry) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// RegisterLazy registers factory as the deferred constructor for T.
// The factory is not invoked until the first access.
//
// It fails with AlreadyRegisteredError if T already has a slot, created or not.
func RegisterLazy[T any](r *Registry, factory func() T) error {
	if r == nil {
		return ErrNilRegistry
	}
	if factory == nil {
		return ErrNilFactory
	}
	return r.register(typeKey[T](), &deferredAccessor[T]{lazy: NewLazy(factory)})
}

// RegisterLazyErr is RegisterLazy for a factory that may fail.
// A failed construction is not memoized; the next access retries it.
func RegisterLazyErr[T any](r *Registry, factory func() (T, error)) error {
	if r == nil {
		return ErrNilRegistry
	}
	if factory == nil {
		return ErrNilFactory
	}
	return r.register(typeKey[T](), &deferredAccessor[T]{lazy: NewLazyErr(factory)})
}

// RegisterLazyHandle registers a caller-owned *Lazy for T.
//
// The caller may keep using the handle directly; the registry and the caller
// observe the same memoized instance. A handle that is already created makes
// the slot created immediately. Dispose resets the handle, so re-registering it
// afterwards yields a fresh instance, never the disposed one.
func RegisterLazyHandle[T any](r *Registry, lazy *Lazy[T]) error {
	if r == nil {
		return ErrNilRegistry
	}
	if lazy == nil || (lazy.factory == nil && !lazy.IsCreated()) {
		return ErrNilFactory
	}
	return r.register(typeKey[T](), &deferredAccessor[T]{lazy: lazy})
}

// RegisterInstance registers an already-constructed instance for T.
//
// It fails with ErrNilInstance for nil values and with AlreadyRegisteredError
// if T already has a slot.
func RegisterInstance[T any](r *Registry, instance T) error {
	if r == nil {
		return ErrNilRegistry
	}
	if isNil(instance) {
		return ErrNilInstance
	}
	return r.register(typeKey[T](), &eagerAccessor[T]{val: instance})
}

// Unregister clears the slot for T without disposing the instance.
// A deferred slot that was never accessed is cleared without constructing it.
// A construction already running for T is waited for; the instance it yields
// stays with the caller that requested it. Like Dispose, Unregister must not
// be called for T from T's own factory.
//
// It fails with NotRegisteredError if T has no slot.
func Unregister[T any](r *Registry) error {
	if r == nil {
		return ErrNilRegistry
	}
	key := typeKey[T]()
	acc, err := r.remove(key)
	if err != nil {
		return err
	}
	_, created := acc.retire(false)
	logUnregistered(r.logger, key.String(), created)
	return nil
}

// Dispose clears the slot for T and, if the instance was created, invokes its
// disposal capability. Recognized capabilities, first match wins:
//
//   - io.Closer
//   - Disposer (Dispose() error)
//   - Dispose() with no result
//
// Instances without a capability are left untouched. A failing capability
// yields a DisposeError; the slot is cleared regardless.
//
// A construction already running for T is waited for and its result disposed.
// A *Lazy registered with RegisterLazyHandle is reset, so the handle constructs
// a fresh instance on its next Get instead of returning the disposed one.
//
// Dispose must not be called for T from T's own factory; it would wait on itself.
//
// It fails with NotRegisteredError if T has no slot.
func Dispose[T any](r *Registry) error {
	if r == nil {
		return ErrNilRegistry
	}
	key := typeKey[T]()
	acc, err := r.remove(key)
	if err != nil {
		return err
	}
	return r.disposeSlot(key, acc)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

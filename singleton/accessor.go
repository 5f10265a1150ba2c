package singleton

// Kind names the registration strategy behind a slot.
type Kind string

const (
	// KindEager marks a slot registered with a pre-built instance.
	KindEager Kind = "eager"

	// KindLazy marks a slot registered with a factory or a *Lazy handle.
	KindLazy Kind = "lazy"
)

// String returns the string representation of the kind.
func (k Kind) String() string { return string(k) }

// accessor is the type-erased view of a slot's content stored in the registry map.
type accessor interface {
	kind() Kind
	created() bool

	// retire is called once the slot has left the map. It waits for an
	// in-flight construction, refuses any later one, and returns the instance
	// if it exists. With reset, a deferred accessor also drops its instance.
	retire(reset bool) (any, bool)
}

// typedAccessor is the view the generic façade uses once T is known.
type typedAccessor[T any] interface {
	accessor
	get(begin constructHook) (T, error)
}

// eagerAccessor wraps an already-constructed instance.
type eagerAccessor[T any] struct {
	val T
}

func (a *eagerAccessor[T]) kind() Kind                   { return KindEager }
func (a *eagerAccessor[T]) created() bool                { return true }
func (a *eagerAccessor[T]) retire(bool) (any, bool)      { return a.val, true }
func (a *eagerAccessor[T]) get(constructHook) (T, error) { return a.val, nil }

// deferredAccessor defers construction to a *Lazy.
type deferredAccessor[T any] struct {
	lazy *Lazy[T]

	// retired is guarded by lazy.mu.
	retired bool
}

func (a *deferredAccessor[T]) kind() Kind    { return KindLazy }
func (a *deferredAccessor[T]) created() bool { return a.lazy.IsCreated() }

func (a *deferredAccessor[T]) retire(reset bool) (any, bool) {
	a.lazy.mu.Lock()
	defer a.lazy.mu.Unlock()

	a.retired = true
	v, ok := a.lazy.settle(reset)
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *deferredAccessor[T]) get(begin constructHook) (T, error) {
	return a.lazy.get(begin, a.admit)
}

// admit runs under lazy.mu. A caller that looked the slot up before it was
// cleared must not construct an instance nobody will dispose.
func (a *deferredAccessor[T]) admit() error {
	if a.retired {
		return NotRegisteredError{Type: typeKey[T]().String()}
	}
	return nil
}

var (
	_ typedAccessor[int] = (*eagerAccessor[int])(nil)
	_ typedAccessor[int] = (*deferredAccessor[int])(nil)
)

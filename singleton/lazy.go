package singleton

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Lazy is a memoizing wrapper around a factory.
//
// The factory runs at most once successfully. Concurrent first callers block
// until the single construction finishes and all observe the same value.
// A factory that returns an error or panics leaves the Lazy un-created, so the
// next Get retries.
//
// A Lazy can be registered with RegisterLazyHandle while the caller keeps its
// own reference for direct access outside the registry. Disposing the slot
// through the registry resets the handle; its next Get constructs anew.
type Lazy[T any] struct {
	factory func() (T, error)

	mu  sync.Mutex
	val atomic.Pointer[lazyValue[T]]
}

type lazyValue[T any] struct {
	v T
}

// constructHook is called right before a construction attempt runs. The
// returned func, if any, receives the outcome of that attempt.
type constructHook func() (finish func(err error))

// NewLazy wraps a factory that cannot fail.
func NewLazy[T any](factory func() T) *Lazy[T] {
	if factory == nil {
		return &Lazy[T]{}
	}
	return &Lazy[T]{factory: func() (T, error) { return factory(), nil }}
}

// NewLazyErr wraps a factory that may fail.
func NewLazyErr[T any](factory func() (T, error)) *Lazy[T] {
	return &Lazy[T]{factory: factory}
}

// IsCreated reports whether the value has been constructed.
func (l *Lazy[T]) IsCreated() bool {
	return l != nil && l.val.Load() != nil
}

// Get returns the memoized value, constructing it on first call.
func (l *Lazy[T]) Get() (T, error) {
	return l.get(nil, nil)
}

// Value is Get without the error; it returns the zero value when construction fails.
func (l *Lazy[T]) Value() T {
	v, _ := l.get(nil, nil)
	return v
}

// settle returns the memoized value, if any. With reset, the memoized value is
// dropped. The caller must hold l.mu, so a construction in flight has finished.
func (l *Lazy[T]) settle(reset bool) (T, bool) {
	p := l.val.Load()
	if reset {
		l.val.Store(nil)
	}
	if p == nil {
		var zero T
		return zero, false
	}
	return p.v, true
}

// get returns the memoized value or constructs it. admit, when set, runs under
// l.mu before the factory and can veto the attempt.
func (l *Lazy[T]) get(begin constructHook, admit func() error) (T, error) {
	if l == nil {
		var zero T
		return zero, ErrNilFactory
	}
	if p := l.val.Load(); p != nil {
		return p.v, nil
	}
	return l.getSlow(begin, admit)
}

func (l *Lazy[T]) getSlow(begin constructHook, admit func() error) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if p := l.val.Load(); p != nil {
		return p.v, nil
	}
	if admit != nil {
		if err := admit(); err != nil {
			return zero, err
		}
	}
	if l.factory == nil {
		return zero, ErrNilFactory
	}

	var finish func(error)
	if begin != nil {
		finish = begin()
	}
	v, err := construct(l.factory)
	if finish != nil {
		finish(err)
	}
	if err != nil {
		return zero, err
	}

	l.val.Store(&lazyValue[T]{v: v})
	return v, nil
}

// construct runs factory and converts a panic into an ErrFactoryPanic error.
func construct[T any](factory func() (T, error)) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			v = zero
			err = fmt.Errorf("%w: %v", ErrFactoryPanic, rec)
		}
	}()
	return factory()
}

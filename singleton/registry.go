package singleton

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Registry maps a type identity to at most one singleton slot.
//
// A Registry is safe for concurrent use. Slot mutation is serialized by an
// internal lock; lazy construction runs outside that lock, so a factory may
// use the registry to fetch other types.
//
// The zero value is not usable; call New.
type Registry struct {
	mu    sync.RWMutex
	slots map[reflect.Type]*slot
	seq   uint64

	id      string
	name    string
	logger  *slog.Logger
	metrics Metrics
	tracer  trace.Tracer
}

// slot is a non-empty registry entry. Empty slots are absent from the map.
type slot struct {
	acc accessor
	seq uint64
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	id := uuid.NewString()
	logger := cfg.logger.With(slog.String("registry_id", id))
	if cfg.name != "" {
		logger = logger.With(slog.String("registry", cfg.name))
	}

	return &Registry{
		slots:   make(map[reflect.Type]*slot),
		id:      id,
		name:    cfg.name,
		logger:  logger,
		metrics: cfg.metrics,
		tracer:  cfg.tracer,
	}
}

// ID returns the unique identifier generated for this registry.
func (r *Registry) ID() string {
	if r == nil {
		return ""
	}
	return r.id
}

// Name returns the name set with WithName, if any.
func (r *Registry) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Len returns the number of registered slots.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func (r *Registry) lookup(key reflect.Type) (accessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[key]
	if !ok {
		return nil, false
	}
	return s.acc, true
}

func (r *Registry) register(key reflect.Type, acc accessor) error {
	r.mu.Lock()
	if _, exists := r.slots[key]; exists {
		r.mu.Unlock()
		return AlreadyRegisteredError{Type: key.String()}
	}
	r.seq++
	r.slots[key] = &slot{acc: acc, seq: r.seq}
	r.mu.Unlock()

	logRegistered(r.logger, key.String(), acc.kind())
	r.metrics.RecordRegistration(context.Background(), key.String(), acc.kind())
	return nil
}

func (r *Registry) remove(key reflect.Type) (accessor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key]
	if !ok {
		return nil, NotRegisteredError{Type: key.String()}
	}
	delete(r.slots, key)
	return s.acc, nil
}

// constructionHook returns the hook a deferred accessor runs around a
// construction attempt: one span, one log record and one metric per attempt.
func (r *Registry) constructionHook(key reflect.Type) constructHook {
	return func() func(error) {
		name := key.String()
		span := startConstructSpan(r.tracer, name, r.id)
		start := time.Now()

		return func(err error) {
			elapsed := time.Since(start)
			endSpanWithError(span, err)
			if err != nil {
				logCreateFailed(r.logger, name, err)
			} else {
				logCreated(r.logger, name, elapsed)
			}
			r.metrics.RecordCreation(context.Background(), name, elapsed, err)
		}
	}
}

// disposeSlot applies the disposal capability of an already-removed accessor.
// It waits for a construction that is still running and disposes its result.
// A deferred accessor that was never created is left untouched; one that was
// created is reset, so a caller-owned handle constructs anew on next access.
func (r *Registry) disposeSlot(key reflect.Type, acc accessor) error {
	name := key.String()

	inst, ok := acc.retire(true)
	if !ok {
		logDisposed(r.logger, name, false)
		return nil
	}

	found, err := disposeValue(inst)
	if !found {
		logDisposed(r.logger, name, false)
		return nil
	}

	r.metrics.RecordDisposal(context.Background(), name, err)
	if err != nil {
		logDisposeFailed(r.logger, name, err)
		return DisposeError{Type: name, Err: err}
	}
	logDisposed(r.logger, name, true)
	return nil
}

// DisposeAll clears every slot, disposing created instances in reverse
// registration order. Disposal errors are joined; the registry ends up empty
// either way.
//
// Constructions still running are waited for, so DisposeAll must not be
// called from a factory registered with r.
func (r *Registry) DisposeAll() error {
	if r == nil {
		return ErrNilRegistry
	}
	r.mu.Lock()
	type entry struct {
		key reflect.Type
		s   *slot
	}
	entries := make([]entry, 0, len(r.slots))
	for k, s := range r.slots {
		entries = append(entries, entry{key: k, s: s})
	}
	r.slots = make(map[reflect.Type]*slot)
	r.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].s.seq > entries[j].s.seq })

	var errs []error
	for _, e := range entries {
		if err := r.disposeSlot(e.key, e.s.acc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, creating it on first call.
//
// Prefer passing an explicit *Registry; Default exists for programs that want
// a single global namespace.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New(WithName("default"))
	})
	return defaultRegistry
}

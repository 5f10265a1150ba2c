package singleton_test

import (
	"errors"
	"sync/atomic"
)

// DB is a fake connection pool that implements io.Closer.
type DB struct {
	DSN    string
	closes atomic.Int32
}

func (d *DB) Close() error {
	d.closes.Add(1)
	return nil
}

// Logger has no disposal capability.
type Logger struct {
	Level string
}

// Counter implements Dispose() without a result.
type Counter struct {
	Value     int
	disposals int
}

func (c *Counter) Dispose() { c.disposals++ }

// Cache implements Disposer and can be told to fail.
type Cache struct {
	fail      bool
	disposals int
}

var errCacheFlush = errors.New("cache: flush failed")

func (c *Cache) Dispose() error {
	c.disposals++
	if c.fail {
		return errCacheFlush
	}
	return nil
}

// Greeter is an interface key.
type Greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

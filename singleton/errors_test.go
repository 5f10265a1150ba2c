package singleton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "already registered",
			err:  AlreadyRegisteredError{Type: "*db.Pool"},
			want: `singleton: type "*db.Pool" already registered`,
		},
		{
			name: "not registered",
			err:  NotRegisteredError{Type: "*db.Pool"},
			want: `singleton: type "*db.Pool" not registered`,
		},
		{
			name: "dispose with cause",
			err:  DisposeError{Type: "*db.Pool", Err: cause},
			want: `singleton: dispose "*db.Pool": connection reset`,
		},
		{
			name: "dispose without cause",
			err:  DisposeError{Type: "*db.Pool"},
			want: `singleton: dispose "*db.Pool"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorMatching(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, AlreadyRegisteredError{Type: "x"}, ErrAlreadyRegistered)
	assert.NotErrorIs(t, AlreadyRegisteredError{Type: "x"}, ErrNotRegistered)

	assert.ErrorIs(t, NotRegisteredError{Type: "x"}, ErrNotRegistered)
	assert.NotErrorIs(t, NotRegisteredError{Type: "x"}, ErrAlreadyRegistered)

	cause := errors.New("closed twice")
	assert.ErrorIs(t, DisposeError{Type: "x", Err: cause}, cause)
}

// TestDisposeValue covers capability detection directly.
func TestDisposeValue(t *testing.T) {
	t.Parallel()

	t.Run("no capability", func(t *testing.T) {
		t.Parallel()
		found, err := disposeValue(struct{}{})
		assert.False(t, found)
		assert.NoError(t, err)
	})

	t.Run("nil value", func(t *testing.T) {
		t.Parallel()
		found, err := disposeValue(nil)
		assert.False(t, found)
		assert.NoError(t, err)
	})

	t.Run("panicking closer", func(t *testing.T) {
		t.Parallel()
		found, err := disposeValue(panickyCloser{})
		assert.True(t, found)
		assert.ErrorContains(t, err, "panic during dispose: close on closed channel")
	})
}

type panickyCloser struct{}

func (panickyCloser) Close() error { panic("close on closed channel") }

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		nilIface error
	)

	assert.True(t, isNil(nil))
	assert.True(t, isNil(nilPtr))
	assert.True(t, isNil(nilMap))
	assert.True(t, isNil(nilSlice))
	assert.True(t, isNil(nilFunc))
	assert.True(t, isNil(nilChan))
	assert.True(t, isNil(nilIface))

	assert.False(t, isNil(0))
	assert.False(t, isNil(""))
	assert.False(t, isNil(struct{}{}))
	assert.False(t, isNil(&struct{}{}))
	assert.False(t, isNil([]int{}))
}

package singleton

import (
	"fmt"
	"io"
)

// Disposer is implemented by instances that release resources on Dispose.
//
// io.Closer and a plain Dispose() method are recognized as well; see Dispose.
type Disposer interface {
	Dispose() error
}

type voidDisposer interface {
	Dispose()
}

// disposeValue invokes the disposal capability of v, if any.
// It reports whether a capability was found. Panics are returned as errors.
func disposeValue(v any) (found bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			found = true
			err = fmt.Errorf("panic during dispose: %v", rec)
		}
	}()

	switch d := v.(type) {
	case io.Closer:
		return true, d.Close()
	case Disposer:
		return true, d.Dispose()
	case voidDisposer:
		d.Dispose()
		return true, nil
	default:
		return false, nil
	}
}

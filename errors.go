package spriteanim

import (
	"errors"
	"fmt"
)

// ErrResourceUnavailable is matched by every startup failure: a subsystem,
// window, renderer, image or texture that could not be acquired.
var ErrResourceUnavailable = errors.New("resource unavailable")

var errPixelFormatMismatch = errors.New("Pixmap has invalid pixel format")

// ResourceError reports which resource could not be acquired.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrResourceUnavailable) hold.
func (e *ResourceError) Is(target error) bool {
	return target == ErrResourceUnavailable
}

func unavailable(resource string, err error) error {
	return &ResourceError{Resource: resource, Err: err}
}

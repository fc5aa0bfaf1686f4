package gpu

import (
	"errors"
	"fmt"
	"strings"
)

// Surface acquire failures, classified so the event loop can apply a policy
// per kind. Lost and outdated surfaces are resolved by reconfiguring against
// the current window size; a timeout drops the frame; out-of-memory ends the
// loop.
var (
	ErrSurfaceLost     = errors.New("surface lost")
	ErrSurfaceOutdated = errors.New("surface outdated")
	ErrTimeout         = errors.New("surface timeout")
	ErrOutOfMemory     = errors.New("surface out of memory")
)

// classifySurfaceError maps an acquire error from the binding onto one of the
// sentinel errors above. The binding reports the surface status only as text,
// so classification goes by message. Unrecognized errors are returned
// unchanged; the caller treats those like a lost surface and reconfigures.
func classifySurfaceError(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %s", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %s", ErrSurfaceLost, err)
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %s", ErrOutOfMemory, err)
	default:
		return err
	}
}

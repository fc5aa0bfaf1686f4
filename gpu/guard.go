package gpu

// Releaser is anything holding a native wgpu handle.
type Releaser interface {
	Release()
}

// ReleaseGuard releases a wgpu object unless Keep was called first. Useful
// with defer on error-prone encode paths where the object changes owner
// halfway through.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

// Keep disarms the guard.
func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}

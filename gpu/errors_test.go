package gpu

import (
	"errors"
	"testing"
)

func TestClassifySurfaceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "timeout",
			err:  errors.New("Surface timed out"),
			want: ErrTimeout,
		},
		{
			name: "outdated",
			err:  errors.New("Surface is outdated"),
			want: ErrSurfaceOutdated,
		},
		{
			name: "lost",
			err:  errors.New("Surface was lost"),
			want: ErrSurfaceLost,
		},
		{
			name: "out of memory",
			err:  errors.New("Out of memory"),
			want: ErrOutOfMemory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySurfaceError(tt.err)

			if !errors.Is(got, tt.want) {
				t.Errorf("classifySurfaceError(%q) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifySurfaceErrorUnknown(t *testing.T) {
	err := errors.New("validation error")
	got := classifySurfaceError(err)

	if got != err {
		t.Errorf("classifySurfaceError() = %v, want the error unchanged", got)
	}

	for _, sentinel := range []error{ErrTimeout, ErrSurfaceOutdated, ErrSurfaceLost, ErrOutOfMemory} {
		if errors.Is(got, sentinel) {
			t.Errorf("classifySurfaceError() matches %v for an unknown error", sentinel)
		}
	}
}

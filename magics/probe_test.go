package magics

import (
	"testing"

	"github.com/greenozon/python-xdis/errors"
)

func TestVersionInfo_VersionString(t *testing.T) {
	tests := []struct {
		name string
		info VersionInfo
		want string
	}{
		{
			name: "cpython final",
			info: VersionInfo{Major: 3, Minor: 7, Micro: 4, ReleaseLevel: Final, Implementation: "CPython"},
			want: "3.7.4",
		},
		{
			name: "empty implementation means cpython",
			info: VersionInfo{Major: 2, Minor: 7, Micro: 18, ReleaseLevel: Final},
			want: "2.7.18",
		},
		{
			name: "cpython beta",
			info: VersionInfo{Major: 3, Minor: 7, Micro: 0, ReleaseLevel: Beta, Serial: 2, Implementation: "CPython"},
			want: "3.7.0beta2",
		},
		{
			name: "pypy",
			info: VersionInfo{Major: 2, Minor: 7, Micro: 13, ReleaseLevel: Final, Implementation: "PyPy"},
			want: "2.7.13pypy",
		},
		{
			name: "graal",
			info: VersionInfo{Major: 3, Minor: 8, Micro: 5, ReleaseLevel: Final, Implementation: "GraalVM"},
			want: "3.8.5Graal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.VersionString(); got != tt.want {
				t.Errorf("VersionString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuntimeMagic(t *testing.T) {
	reg := mustLoad(t)

	tests := []struct {
		name     string
		info     VersionInfo
		wantWord int
	}{
		{
			name:     "cpython 3.7.4",
			info:     VersionInfo{Major: 3, Minor: 7, Micro: 4, ReleaseLevel: Final},
			wantWord: 3394,
		},
		{
			name:     "cpython 3.7.0b2",
			info:     VersionInfo{Major: 3, Minor: 7, Micro: 0, ReleaseLevel: Beta, Serial: 2},
			wantWord: 3392,
		},
		{
			name:     "pypy 2.7.13",
			info:     VersionInfo{Major: 2, Minor: 7, Micro: 13, ReleaseLevel: Final, Implementation: "PyPy"},
			wantWord: 62218,
		},
		{
			name:     "cpython 3.10.4",
			info:     VersionInfo{Major: 3, Minor: 10, Micro: 4, ReleaseLevel: Final},
			wantWord: 3439,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := reg.RuntimeMagic(tt.info)
			if err != nil {
				t.Fatalf("RuntimeMagic failed: %v", err)
			}
			if m.Int() != tt.wantWord {
				t.Errorf("RuntimeMagic().Int() = %d, want %d", m.Int(), tt.wantWord)
			}
		})
	}
}

func TestRuntimeMagic_Unresolved(t *testing.T) {
	// An unresolvable runtime must surface unresolved_runtime, never a
	// guessed format.
	reg := mustLoad(t)

	info := VersionInfo{Major: 3, Minor: 99, Micro: 0, ReleaseLevel: Final}
	_, err := reg.RuntimeMagic(info)
	if err == nil {
		t.Fatal("RuntimeMagic succeeded for an unknown runtime")
	}
	if !errors.Is(err, errors.ErrUnresolvedRuntime) {
		t.Errorf("error = %v, want unresolved_runtime", err)
	}
}

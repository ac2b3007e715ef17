package magics

import (
	"strconv"
	"strings"

	"github.com/greenozon/python-xdis/errors"
)

// ReleaseLevel is the pre-release stage reported by a runtime probe,
// mirroring sys.version_info.releaselevel.
type ReleaseLevel string

const (
	Alpha     ReleaseLevel = "alpha"
	Beta      ReleaseLevel = "beta"
	Candidate ReleaseLevel = "candidate"
	Final     ReleaseLevel = "final"
)

// VersionInfo describes a live runtime's identity as supplied by an
// external probe: the sys.version_info tuple plus the implementation name
// from platform.python_implementation().
type VersionInfo struct {
	Major, Minor, Micro int
	ReleaseLevel        ReleaseLevel
	Serial              int
	Implementation      string // "CPython", "PyPy", "Jython", "Pyston", "GraalVM"; empty means CPython
}

// Implementation suffixes as they appear in catalog version spellings.
// CPython has no suffix.
var implementationSuffix = map[string]string{
	"CPython": "",
	"PyPy":    "pypy",
	"Jython":  "Jython",
	"Pyston":  "Pyston",
	"GraalVM": "Graal",
}

// VersionString renders the spelling used for catalog lookup:
// "major.minor.micro", then the release level and serial for pre-releases
// ("3.7.0beta2"), then the implementation suffix ("3.7.9pypy").
func (v VersionInfo) VersionString() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.Major))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Minor))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(v.Micro))
	if v.ReleaseLevel != "" && v.ReleaseLevel != Final {
		b.WriteString(string(v.ReleaseLevel))
		b.WriteString(strconv.Itoa(v.Serial))
	}
	if suffix, ok := implementationSuffix[v.Implementation]; ok {
		b.WriteString(suffix)
	} else {
		b.WriteString(v.Implementation)
	}
	return b.String()
}

// RuntimeMagic resolves the magic identifier for a live runtime.
//
// The probe's version tuple and implementation name are rendered to a
// version spelling, canonicalized, and resolved through MagicFor. Failure
// is an unresolved_runtime error and must propagate: a caller that guesses
// a bytecode format produces silently wrong disassembly, which is strictly
// worse than a visible failure at startup.
func (r *Registry) RuntimeMagic(info VersionInfo) (Magic, error) {
	spelling := info.VersionString()
	canonical, err := r.canon.Canonicalize(spelling)
	if err != nil {
		return Magic{}, errors.UnresolvedRuntime(spelling, err)
	}
	m, ok := r.byVersion[canonical]
	if !ok {
		return Magic{}, errors.UnresolvedRuntime(spelling, nil)
	}
	return m, nil
}

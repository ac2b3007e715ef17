package magics

import (
	"regexp"
	"sort"

	"github.com/greenozon/python-xdis/errors"
)

// Implementation-variant suffixes recognized by the structural fallback.
var variantSuffixRE = regexp.MustCompile(`(pypy|dropbox)$`)

// Structural spellings: "3.6.1" style, or "3.5a0" / "3.6rc1" style where a
// pre-release tag follows major.minor.
var (
	microRE = regexp.MustCompile(`^(\d)\.(\d+)\.(\d+)`)
	minorRE = regexp.MustCompile(`^(\d)\.(\d+)`)
)

// Canonicalizer resolves arbitrary version spellings to the canonical
// representative of their compatibility class.
//
// Resolution is a flat lookup: every alias points directly at a canonical
// version, no transitive chains. When a spelling has no literal entry, a
// pattern fallback strips known implementation-variant suffixes and retries
// with the structural major.minor.micro / major.minor prefixes.
//
// Canonicalizers are immutable once built and safe for concurrent reads.
type Canonicalizer struct {
	// aliases maps every known spelling to its canonical version.
	// Canonical versions map to themselves, which makes Canonicalize
	// idempotent.
	aliases map[string]string
}

// Canonicalize returns the canonical version for an arbitrary spelling.
// Fails with an unknown_version error if the spelling is not registered
// directly, via an alias, or via the pattern fallback.
func (c *Canonicalizer) Canonicalize(version string) (string, error) {
	if canonical, ok := c.aliases[version]; ok {
		return canonical, nil
	}

	// Pattern fallback: strip implementation-variant suffixes, then try the
	// structural prefixes against the literal table.
	stripped := variantSuffixRE.ReplaceAllString(version, "")
	if stripped != version {
		if canonical, ok := c.aliases[stripped]; ok {
			return canonical, nil
		}
	}
	if m := microRE.FindStringSubmatch(stripped); m != nil {
		if canonical, ok := c.aliases[m[1]+"."+m[2]+"."+m[3]]; ok {
			return canonical, nil
		}
	}
	if m := minorRE.FindStringSubmatch(stripped); m != nil {
		if canonical, ok := c.aliases[m[1]+"."+m[2]]; ok {
			return canonical, nil
		}
	}

	return "", errors.UnknownVersion(errors.PhaseQuery, version)
}

// IsCanonical reports whether version is the representative of its own
// compatibility class.
func (c *Canonicalizer) IsCanonical(version string) bool {
	return c.aliases[version] == version
}

// Known returns every registered spelling, canonical and alias alike,
// in sorted order.
func (c *Canonicalizer) Known() []string {
	out := make([]string, 0, len(c.aliases))
	for v := range c.aliases {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// VersionTuple extracts the numeric components of a known version spelling:
// (major, minor, micro) for "3.6.1" style spellings, (major, minor) for
// pre-release spellings like "3.5a0" or "2.7a0+3". Implementation-variant
// suffixes are ignored. Fails with unknown_version for unregistered
// spellings.
func (c *Canonicalizer) VersionTuple(version string) ([]int, error) {
	stripped := variantSuffixRE.ReplaceAllString(version, "")
	if _, ok := c.aliases[stripped]; !ok {
		if _, err := c.Canonicalize(version); err != nil {
			return nil, errors.UnknownVersion(errors.PhaseQuery, version)
		}
	}
	if m := microRE.FindStringSubmatch(stripped); m != nil {
		return []int{atoi(m[1]), atoi(m[2]), atoi(m[3])}, nil
	}
	if m := minorRE.FindStringSubmatch(stripped); m != nil {
		return []int{atoi(m[1]), atoi(m[2])}, nil
	}
	return nil, errors.UnknownVersion(errors.PhaseQuery, version)
}

// atoi converts a digits-only string already vetted by the regexps above.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

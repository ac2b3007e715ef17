package magics

import (
	"github.com/greenozon/python-xdis/errors"
)

// Registry is the bidirectional index between magic identifiers and
// canonical version strings.
//
// The relationship is many-to-many at the raw level: one magic occasionally
// denotes several pre-release tags that share a binary format, and two
// historically distinct magic words sometimes map to the same canonical
// version (superseded format bumps within one alpha cycle). Both directions
// retain the full picture; only the word-to-version forward map collapses to
// the last registration.
//
// Registries are immutable after Build and safe for unsynchronized
// concurrent reads from any number of callers.
type Registry struct {
	canon *Canonicalizer

	// byMagic holds every version ever registered for an identifier,
	// sorted. Never collapsed: superseded registrations stay queryable.
	byMagic map[Magic][]string

	// byVersion maps a canonical version to its magic identifier. When two
	// words were registered for one version, the later registration wins.
	byVersion map[string]Magic

	// wordToVersion is the word-to-version forward map. Last registration
	// for a given word wins.
	wordToVersion map[int]string
}

// Canonicalizer returns the version canonicalizer the registry was built
// with.
func (r *Registry) Canonicalizer() *Canonicalizer {
	return r.canon
}

// MagicFor returns the magic identifier for a version spelling.
// The spelling is canonicalized first, so "2.7.18" resolves through "2.7".
// Fails with unknown_version if the spelling has no canonical mapping or no
// magic was registered for it.
func (r *Registry) MagicFor(version string) (Magic, error) {
	canonical, err := r.canon.Canonicalize(version)
	if err != nil {
		return Magic{}, err
	}
	m, ok := r.byVersion[canonical]
	if !ok {
		return Magic{}, errors.UnknownVersion(errors.PhaseQuery, version)
	}
	return m, nil
}

// VersionsFor returns every canonical version ever registered for a magic
// identifier, sorted. The set is never collapsed to one entry: a magic that
// covered several pre-release tags reports them all. Fails with
// unknown_magic if nothing was registered.
func (r *Registry) VersionsFor(m Magic) ([]string, error) {
	versions, ok := r.byMagic[m]
	if !ok {
		return nil, errors.UnknownMagic(errors.PhaseQuery, m)
	}
	out := make([]string, len(versions))
	copy(out, versions)
	return out, nil
}

// VersionFromInt returns the canonical version for a magic word, e.g.
// "2.7" for 62211. When a word was registered twice the last registration
// wins. Fails with unknown_magic for unregistered words.
func (r *Registry) VersionFromInt(word int) (string, error) {
	v, ok := r.wordToVersion[word]
	if !ok {
		return "", errors.UnknownMagic(errors.PhaseQuery, word)
	}
	return v, nil
}

// TupleFromInt returns the numeric version components for a magic word,
// composing VersionFromInt with the canonicalizer's VersionTuple.
func (r *Registry) TupleFromInt(word int) ([]int, error) {
	v, err := r.VersionFromInt(word)
	if err != nil {
		return nil, err
	}
	return r.canon.VersionTuple(v)
}

// Words returns every registered magic word, unsorted.
func (r *Registry) Words() []int {
	out := make([]int, 0, len(r.wordToVersion))
	for w := range r.wordToVersion {
		out = append(out, w)
	}
	return out
}

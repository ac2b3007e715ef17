package magics

import (
	"sort"

	"go.uber.org/zap"

	"github.com/greenozon/python-xdis/errors"
)

// Builder accumulates magic registrations and version aliases, then freezes
// them into an immutable Registry. The catalog is applied strictly
// sequentially; Builder is not safe for concurrent use and is discarded
// after Build.
type Builder struct {
	aliases       map[string]string
	byMagic       map[Magic][]string
	byVersion     map[string]Magic
	wordToVersion map[int]string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		aliases:       make(map[string]string),
		byMagic:       make(map[Magic][]string),
		byVersion:     make(map[string]Magic),
		wordToVersion: make(map[int]string),
	}
}

// Register binds a magic word to a canonical version.
//
// The word is converted to its identifier form, the version is added to the
// identifier's version set, and the version becomes a known canonical
// spelling. Registering the same word twice is allowed: the forward
// word-to-version map keeps the last registration, while the identifier's
// version set keeps every registration. Registering a second word for the
// same version likewise keeps the later word in MagicFor.
func (b *Builder) Register(word int, version string) {
	m := FromInt(word)
	found := false
	for _, v := range b.byMagic[m] {
		if v == version {
			found = true
			break
		}
	}
	if !found {
		b.byMagic[m] = append(b.byMagic[m], version)
	}
	b.byVersion[version] = m
	b.wordToVersion[word] = version
	// A canonical version is a member of its own compatibility class.
	b.aliases[version] = version
}

// Aliases binds each raw spelling to an already-registered canonical
// version. Fails with unknown_version if the target has no registered
// magic: aliases must point directly at a canonical version, never at
// another alias. Re-binding a spelling is allowed and the last binding
// wins, matching the registration precedence rule.
func (b *Builder) Aliases(canonical string, raw ...string) error {
	if _, ok := b.byVersion[canonical]; !ok {
		return errors.UnknownVersion(errors.PhaseBuild, canonical)
	}
	for _, v := range raw {
		b.aliases[v] = canonical
	}
	return nil
}

// Build freezes the accumulated catalog into an immutable Registry.
func (b *Builder) Build() *Registry {
	byMagic := make(map[Magic][]string, len(b.byMagic))
	for m, versions := range b.byMagic {
		vs := make([]string, len(versions))
		copy(vs, versions)
		sort.Strings(vs)
		byMagic[m] = vs
	}
	byVersion := make(map[string]Magic, len(b.byVersion))
	for v, m := range b.byVersion {
		byVersion[v] = m
	}
	wordToVersion := make(map[int]string, len(b.wordToVersion))
	for w, v := range b.wordToVersion {
		wordToVersion[w] = v
	}
	aliases := make(map[string]string, len(b.aliases))
	for raw, canonical := range b.aliases {
		aliases[raw] = canonical
	}

	Logger().Debug("magic registry frozen",
		zap.Int("magics", len(byMagic)),
		zap.Int("versions", len(byVersion)),
		zap.Int("spellings", len(aliases)))

	return &Registry{
		canon:         &Canonicalizer{aliases: aliases},
		byMagic:       byMagic,
		byVersion:     byVersion,
		wordToVersion: wordToVersion,
	}
}

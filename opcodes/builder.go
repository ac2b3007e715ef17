package opcodes

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/greenozon/python-xdis/errors"
	"github.com/greenozon/python-xdis/magics"
)

// Builder derives and publishes opcode tables version by version.
//
// Construction is strictly sequential: every derived table needs its parent
// already published, so the catalog is applied in topological order of the
// derivation forest. A failed derivation publishes nothing for that
// version. Builder is not safe for concurrent use and is discarded after
// Build.
type Builder struct {
	canon  *magics.Canonicalizer
	tables map[string]*Table
	order  []string
}

// NewBuilder creates an empty Builder resolving version spellings through
// canon.
func NewBuilder(canon *magics.Canonicalizer) *Builder {
	return &Builder{
		canon:  canon,
		tables: make(map[string]*Table),
	}
}

// Root publishes a base table from a literal definition list. Roots have no
// parent and no edit replay; the list only has to pass the internal
// uniqueness checks.
func (b *Builder) Root(version string, defs []Opcode) error {
	canonical, err := b.canon.Canonicalize(version)
	if err != nil {
		return err
	}
	if _, dup := b.tables[canonical]; dup {
		return errors.TableConsistency(canonical, "table already published")
	}

	byCode := make(map[int]Opcode, len(defs))
	byName := make(map[string]struct{}, len(defs))
	for _, op := range defs {
		if err := checkOpcode(canonical, op.Name, op.Code); err != nil {
			return err
		}
		if _, dup := byCode[op.Code]; dup {
			return errors.TableConsistency(canonical, "duplicate code %d in root catalog", op.Code)
		}
		if _, dup := byName[op.Name]; dup {
			return errors.TableConsistency(canonical, "duplicate name %q in root catalog", op.Name)
		}
		byCode[op.Code] = op
		byName[op.Name] = struct{}{}
	}

	b.publish(newTable(canonical, "", byCode))
	return nil
}

// Derive publishes version's table by replaying edits against a copy of
// parent's table. The parent is never mutated: the two tables share no
// storage afterwards. Replay is validated edit by edit and the table is
// only published if the whole sequence applies cleanly.
func (b *Builder) Derive(version, parent string, edits []Edit) error {
	canonical, err := b.canon.Canonicalize(version)
	if err != nil {
		return err
	}
	if _, dup := b.tables[canonical]; dup {
		return errors.TableConsistency(canonical, "table already published")
	}
	parentCanonical, err := b.canon.Canonicalize(parent)
	if err != nil {
		return err
	}
	parentTable, ok := b.tables[parentCanonical]
	if !ok {
		return errors.UnknownVersion(errors.PhaseBuild, parent)
	}

	// Deep copy. Opcode is a value type, so copying the map is enough to
	// isolate the parent from every later mutation.
	byCode := make(map[int]Opcode, len(parentTable.byCode))
	byName := make(map[string]int, len(parentTable.byName))
	for code, op := range parentTable.byCode {
		byCode[code] = op
		byName[op.Name] = code
	}

	for _, e := range edits {
		if err := apply(canonical, byCode, byName, e); err != nil {
			return err
		}
	}

	b.publish(newTable(canonical, parentCanonical, byCode))
	return nil
}

// apply replays a single edit, validating it against the table state left
// by all prior edits in the sequence.
func apply(version string, byCode map[int]Opcode, byName map[string]int, e Edit) error {
	switch e.kind {
	case editRemove:
		cur, ok := byCode[e.code]
		if !ok {
			return errors.TableConsistency(version, "cannot %s: code not present", e)
		}
		if cur.Name != e.name {
			return errors.TableConsistency(version, "cannot %s: code %d is %q", e, e.code, cur.Name)
		}
		delete(byCode, e.code)
		delete(byName, e.name)

	case editDefine, editAlias:
		if err := checkOpcode(version, e.name, e.code); err != nil {
			return err
		}
		if prev, dup := byName[e.name]; dup {
			return errors.TableConsistency(version, "cannot %s: name already bound to code %d", e, prev)
		}
		if prev, dup := byCode[e.code]; dup {
			return errors.TableConsistency(version, "cannot %s: code already bound to %q", e, prev.Name)
		}
		byCode[e.code] = Opcode{Name: e.name, Code: e.code, Flags: e.flags, Synthetic: e.kind == editAlias}
		byName[e.name] = e.code

	case editRedefine:
		if err := checkOpcode(version, e.name, e.code); err != nil {
			return err
		}
		cur, ok := byCode[e.code]
		if !ok {
			return errors.TableConsistency(version, "cannot %s: code not present, use define", e)
		}
		if prev, bound := byName[e.name]; bound && prev != e.code {
			return errors.TableConsistency(version, "cannot %s: name already bound to code %d", e, prev)
		}
		delete(byName, cur.Name)
		byCode[e.code] = Opcode{Name: e.name, Code: e.code, Flags: e.flags, Synthetic: cur.Synthetic}
		byName[e.name] = e.code

	default:
		return errors.TableConsistency(version, "invalid edit %q", e)
	}
	return nil
}

// checkOpcode validates the fields shared by every defining edit.
func checkOpcode(version, name string, code int) error {
	if name == "" {
		return errors.TableConsistency(version, "empty opcode name for code %d", code)
	}
	if code < 0 || code > MaxCode {
		return errors.TableConsistency(version, "code %d for %q outside [0, %d]", code, name, MaxCode)
	}
	return nil
}

func (b *Builder) publish(t *Table) {
	b.tables[t.version] = t
	b.order = append(b.order, t.version)
	Logger().Debug("opcode table published",
		zap.String("version", t.version),
		zap.String("parent", t.parent),
		zap.Int("opcodes", t.Len()))
}

// Build freezes the published tables into an immutable Registry after a
// final whole-catalog verification of the bijective projections.
func (b *Builder) Build() (*Registry, error) {
	var verr error
	for _, version := range b.order {
		t := b.tables[version]
		if len(t.byCode) != len(t.byName) {
			verr = multierr.Append(verr, errors.TableConsistency(version,
				"projection size mismatch: %d codes, %d names", len(t.byCode), len(t.byName)))
			continue
		}
		for code, op := range t.byCode {
			if back, ok := t.byName[op.Name]; !ok || back != code {
				verr = multierr.Append(verr, errors.TableConsistency(version,
					"projections disagree on %q (%d)", op.Name, code))
			}
		}
	}
	if verr != nil {
		return nil, fmt.Errorf("opcode catalog verification: %w", verr)
	}

	tables := make(map[string]*Table, len(b.tables))
	for v, t := range b.tables {
		tables[v] = t
	}
	return &Registry{canon: b.canon, tables: tables}, nil
}

// Registry resolves opcode tables by version. Immutable after Build and
// safe for unsynchronized concurrent reads.
type Registry struct {
	canon  *magics.Canonicalizer
	tables map[string]*Table
}

// Table returns the opcode table for a version spelling, canonicalizing it
// first. Fails with unknown_version if the spelling is unknown or no table
// was published for its compatibility class.
func (r *Registry) Table(version string) (*Table, error) {
	canonical, err := r.canon.Canonicalize(version)
	if err != nil {
		return nil, err
	}
	t, ok := r.tables[canonical]
	if !ok {
		return nil, errors.UnknownVersion(errors.PhaseQuery, version)
	}
	return t, nil
}

// Code is shorthand for Table(version).Code(name).
func (r *Registry) Code(version, name string) (int, error) {
	t, err := r.Table(version)
	if err != nil {
		return 0, err
	}
	return t.Code(name)
}

// Name is shorthand for Table(version).Name(code).
func (r *Registry) Name(version string, code int) (string, error) {
	t, err := r.Table(version)
	if err != nil {
		return "", err
	}
	return t.Name(code)
}

// Classify is shorthand for Table(version).Classify(code).
func (r *Registry) Classify(version string, code int) (Flag, error) {
	t, err := r.Table(version)
	if err != nil {
		return 0, err
	}
	return t.Classify(code)
}

// Versions returns the canonical versions with a published table, sorted.
func (r *Registry) Versions() []string {
	out := make([]string, 0, len(r.tables))
	for v := range r.tables {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

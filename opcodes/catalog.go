package opcodes

import "github.com/greenozon/python-xdis/magics"

// haveArgument is CPython's HAVE_ARGUMENT boundary: codes below it take no
// argument in the instruction stream.
const haveArgument = 90

// Shorthand constructors for catalog literals, one per argument category,
// mirroring how the historical opcode modules spell their definitions.

func op(name string, code int) Opcode {
	var flags Flag
	if code < haveArgument {
		flags = FlagNoArg
	}
	return Opcode{Name: name, Code: code, Flags: flags}
}

func nameOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagName}
}

func jrelOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagJumpRelative}
}

func jabsOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagJumpAbsolute}
}

func constOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagConst}
}

func localOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagLocal}
}

func freeOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagFree}
}

func compareOp(name string, code int) Opcode {
	return Opcode{Name: name, Code: code, Flags: FlagCompare}
}

// catalogEntry is one step of the derivation forest: a root table or a
// derived edit list. Entries are applied in order, so every parent must
// appear before its children. Append new versions; never reorder or edit
// published entries.
type catalogEntry struct {
	version string
	parent  string   // empty for roots
	defs    []Opcode // root tables only
	edits   []Edit   // derived tables only
}

// catalog returns the full derivation forest in topological order.
func catalog() []catalogEntry {
	entries := []catalogEntry{
		{version: "2.7", defs: defs27()},
		{version: "2.7pypy", parent: "2.7", edits: edits27pypy()},
		{version: "3.2a2", defs: defs32()},
		{version: "3.3a4", parent: "3.2a2", edits: edits33()},
		{version: "3.4rc2", parent: "3.3a4", edits: edits34()},
		{version: "3.5", parent: "3.4rc2", edits: edits35()},
		// 3.5.2 bumped the magic word for a BUILD_MAP_UNPACK_WITH_CALL
		// behavior fix; the instruction set itself is unchanged.
		{version: "3.5.2", parent: "3.5"},
		{version: "3.6rc1", parent: "3.5", edits: edits36()},
		{version: "3.7.0", parent: "3.6rc1", edits: edits37()},
		{version: "3.8.0rc1+", parent: "3.7.0", edits: edits38()},
	}
	return entries
}

// Load builds the opcode registry from the compiled-in catalog, resolving
// version spellings through canon. Any derivation failure aborts the whole
// load: partial registries are never returned.
func Load(canon *magics.Canonicalizer) (*Registry, error) {
	b := NewBuilder(canon)
	for _, e := range catalog() {
		var err error
		if e.parent == "" {
			err = b.Root(e.version, e.defs)
		} else {
			err = b.Derive(e.version, e.parent, e.edits)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.Build()
}

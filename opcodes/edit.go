package opcodes

import "fmt"

type editKind uint8

const (
	editDefine editKind = iota
	editRemove
	editAlias
	editRedefine
)

func (k editKind) String() string {
	switch k {
	case editDefine:
		return "define"
	case editRemove:
		return "remove"
	case editAlias:
		return "alias"
	case editRedefine:
		return "redefine"
	default:
		return "unknown"
	}
}

// Edit is one step in deriving a version's opcode table from its parent's.
// Construct edits with Define, Remove, Alias and Redefine; the zero value
// is not a valid edit.
type Edit struct {
	kind  editKind
	name  string
	code  int
	flags Flag
}

// Define adds a new opcode. The name and the code must both be free in the
// table at this point of the replay; colliding with an existing entry is a
// table_consistency error.
func Define(name string, code int, flags Flag) Edit {
	return Edit{kind: editDefine, name: name, code: code, flags: flags}
}

// Remove deletes an opcode. The (name, code) pair must match an entry
// present at this point of the replay; removing a missing opcode, or
// naming the right opcode with the wrong code, is a table_consistency
// error.
func Remove(name string, code int) Edit {
	return Edit{kind: editRemove, name: name, code: code}
}

// Alias adds a synthetic opcode: a semantics-only marker that follows the
// same collision rules as Define but is excluded from the core defined-ops
// subset because it never appears in real compiled bytecode.
func Alias(name string, code int, flags Flag) Edit {
	return Edit{kind: editAlias, name: name, code: code, flags: flags}
}

// Redefine replaces the opcode currently holding code. This is the
// explicit escape hatch for the catalog's known-intentional overrides
// (pre-release bring-up cycles that reassigned a code); an accidental
// collision still fails, because Redefine requires the code to be
// occupied and the new name to be otherwise unused.
func Redefine(name string, code int, flags Flag) Edit {
	return Edit{kind: editRedefine, name: name, code: code, flags: flags}
}

// String renders the edit for error messages, e.g. `define LOAD_METHOD (160)`.
func (e Edit) String() string {
	return fmt.Sprintf("%s %s (%d)", e.kind, e.name, e.code)
}

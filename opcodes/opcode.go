package opcodes

import "strings"

// Flag classifies what an opcode's argument refers to. A definition carries
// zero or more flags; the builder folds them into per-flag code sets after
// replay.
type Flag uint16

const (
	// FlagJumpRelative marks opcodes whose argument is a jump target
	// relative to the following instruction.
	FlagJumpRelative Flag = 1 << iota
	// FlagJumpAbsolute marks opcodes whose argument is an absolute
	// bytecode offset.
	FlagJumpAbsolute
	// FlagConst marks opcodes whose argument indexes the constant pool.
	FlagConst
	// FlagLocal marks opcodes whose argument indexes the local variables.
	FlagLocal
	// FlagFree marks opcodes whose argument indexes the free (closure)
	// variables.
	FlagFree
	// FlagName marks opcodes whose argument indexes the name table.
	FlagName
	// FlagCompare marks opcodes whose argument selects a comparison
	// operator.
	FlagCompare
	// FlagNoArg marks opcodes that take no argument at all.
	FlagNoArg
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagJumpRelative, "jrel"},
	{FlagJumpAbsolute, "jabs"},
	{FlagConst, "const"},
	{FlagLocal, "local"},
	{FlagFree, "free"},
	{FlagName, "name"},
	{FlagCompare, "compare"},
	{FlagNoArg, "noarg"},
}

// Has reports whether every flag in want is set.
func (f Flag) Has(want Flag) bool {
	return f&want == want
}

// String renders the flag set for logs and error messages, e.g.
// "jrel|noarg".
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}

// MaxCode is the largest valid opcode code. Codes occupy a single byte in
// the instruction stream.
const MaxCode = 255

// Opcode is one named instruction in a version's table.
type Opcode struct {
	// Name is the instruction mnemonic, unique within a table.
	Name string
	// Code is the numeric opcode in [0, MaxCode], unique within a table.
	Code int
	// Flags classify the argument, if any.
	Flags Flag
	// Synthetic marks semantics-only markers defined via Alias edits.
	// Synthetic opcodes never appear in real compiled bytecode; parsers
	// use them to annotate instruction streams.
	Synthetic bool
}

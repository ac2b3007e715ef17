package opcodes

import (
	"sort"

	"github.com/greenozon/python-xdis/errors"
)

// Table is the complete named-instruction set for one canonical version.
//
// The name-to-code and code-to-name projections are bijective: no two
// names share a code and no two codes share a name, enforced during
// derivation. Tables are immutable once built and safe for unsynchronized
// concurrent reads.
type Table struct {
	version string
	parent  string // empty for root tables
	byCode  map[int]Opcode
	byName  map[string]int
	byFlag  map[Flag]*CodeSet
}

// Version returns the canonical version this table belongs to.
func (t *Table) Version() string {
	return t.version
}

// Parent returns the canonical version this table was derived from, or ""
// for a root table.
func (t *Table) Parent() string {
	return t.parent
}

// Len returns the number of opcodes in the table, synthetic ones included.
func (t *Table) Len() int {
	return len(t.byCode)
}

// Code returns the numeric code for an opcode name.
// Fails with unknown_opcode if the name is absent in this version.
func (t *Table) Code(name string) (int, error) {
	code, ok := t.byName[name]
	if !ok {
		return 0, errors.UnknownOpcodeName(t.version, name)
	}
	return code, nil
}

// Name returns the mnemonic for a numeric code.
// Fails with unknown_opcode if the code is absent in this version.
func (t *Table) Name(code int) (string, error) {
	op, ok := t.byCode[code]
	if !ok {
		return "", errors.UnknownOpcodeCode(t.version, code)
	}
	return op.Name, nil
}

// Classify returns the category flags for a numeric code.
// Fails with unknown_opcode if the code is absent in this version.
func (t *Table) Classify(code int) (Flag, error) {
	op, ok := t.byCode[code]
	if !ok {
		return 0, errors.UnknownOpcodeCode(t.version, code)
	}
	return op.Flags, nil
}

// Lookup returns the full definition for a numeric code.
func (t *Table) Lookup(code int) (Opcode, bool) {
	op, ok := t.byCode[code]
	return op, ok
}

// Opcodes returns every definition in ascending code order, synthetic ones
// included. The slice is freshly allocated on each call.
func (t *Table) Opcodes() []Opcode {
	out := make([]Opcode, 0, len(t.byCode))
	for _, op := range t.byCode {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Defined returns the non-synthetic definitions in ascending code order:
// the opcodes that can actually appear in compiled bytecode.
func (t *Table) Defined() []Opcode {
	out := make([]Opcode, 0, len(t.byCode))
	for _, op := range t.byCode {
		if !op.Synthetic {
			out = append(out, op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Codes returns the set of codes carrying flag. This is the main surface a
// disassembler consumes: "all relative jumps in 3.6", and so on. The flag
// must be one of the single Flag constants; combined masks return an empty
// set.
func (t *Table) Codes(flag Flag) *CodeSet {
	if s, ok := t.byFlag[flag]; ok {
		return s
	}
	return &CodeSet{}
}

// newTable freezes a replayed definition map into a Table, deriving the
// projections and the per-flag code sets in one pass.
func newTable(version, parent string, byCode map[int]Opcode) *Table {
	byName := make(map[string]int, len(byCode))
	byFlag := make(map[Flag]*CodeSet, len(flagNames))
	for _, fn := range flagNames {
		byFlag[fn.flag] = &CodeSet{}
	}
	for code, op := range byCode {
		byName[op.Name] = code
		for _, fn := range flagNames {
			if op.Flags&fn.flag != 0 {
				byFlag[fn.flag].add(code)
			}
		}
	}
	return &Table{
		version: version,
		parent:  parent,
		byCode:  byCode,
		byName:  byName,
		byFlag:  byFlag,
	}
}

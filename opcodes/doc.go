// Package opcodes derives the named-instruction table for every supported
// Python version.
//
// Python's instruction set mutates across releases through narrow edits:
// a release removes an opcode here, claims a freed code there, renames a
// jump. Rather than spelling out every version's table from scratch, the
// catalog defines a root table per major line and derives each later
// version by replaying an ordered edit list against its parent's table.
//
// Replay is validated step by step: removing an opcode that is not present,
// or defining a name or code that already is, fails the whole derivation at
// build time. A version whose derivation fails is never published, and
// neither is anything derived from it — a partially-correct table would
// produce silently wrong disassembly downstream, which is strictly worse
// than failing the build.
//
// Build the registry against a version canonicalizer:
//
//	mreg, _ := magics.Load()
//	ops, err := opcodes.Load(mreg.Canonicalizer())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	table, _ := ops.Table("3.6.8") // canonicalizes to "3.6rc1"
//	code, _ := table.Code("LOAD_FAST")
//
// Tables expose their derived per-flag code sets (relative jumps, absolute
// jumps, constant indices, ...) as the primary consumption surface for an
// external disassembler. Everything is immutable after Load and safe for
// unsynchronized concurrent reads.
package opcodes

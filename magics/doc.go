// Package magics maps Python bytecode magic numbers to version strings and
// back.
//
// A compiled Python file starts with a four byte magic identifier: a
// little-endian word naming the bytecode format revision, followed by a
// "\r\n" terminator that catches files damaged by text-mode transfer. The
// word changes with every incompatible bytecode change, so it identifies the
// instruction set of the file more precisely than the interpreter version
// does.
//
// Version spellings are messy: "2.7.18", "2.7" and "2.7.15candidate1" all
// share one bytecode format, while "3.11a4b" and "3.11a4c" name two distinct
// formats inside one alpha cycle. The package groups spellings into
// compatibility classes, each represented by a single canonical version
// string, and indexes magic identifiers by canonical version in both
// directions.
//
// Load builds the registry from the compiled-in catalog:
//
//	reg, err := magics.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := reg.MagicFor("2.7.18") // canonicalizes to "2.7" first
//
// The registry is immutable after Load and safe for unsynchronized
// concurrent reads.
package magics

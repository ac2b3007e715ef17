// Package xdis is a cross-version catalog of Python bytecode formats: the
// magic words stamped into compiled module headers, the canonical version
// behind each release spelling, and the per-version instruction tables.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	python-xdis/         Root package tying the catalogs into one value
//	├── magics/          Magic identifiers, version canonicalization, runtime probes
//	├── opcodes/         Per-version opcode tables derived by edit replay
//	└── errors/          Structured error types shared across packages
//
// # Quick Start
//
// Build the catalog once and query it from any number of goroutines:
//
//	cat, err := xdis.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tab, err := cat.TableForWord(3394) // word from a .pyc header
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := tab.Name(100) // "LOAD_CONST"
//
// # Versions and Spellings
//
// Query methods accept any release spelling: "2.7.18" and "2.7" resolve to
// the same compatibility class, "3.6.9pypy" falls back through its
// implementation suffix. Unknown spellings fail with an unknown_version
// error rather than guessing.
//
// # Thread Safety
//
// Catalog construction is not concurrent, but the returned value is frozen:
// every registry it exposes is immutable and safe for unsynchronized reads.
// There is no package-level singleton; callers own the value and its
// lifetime.
package xdis

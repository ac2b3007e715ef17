package xdis

import (
	"github.com/greenozon/python-xdis/magics"
	"github.com/greenozon/python-xdis/opcodes"
)

// Catalog bundles the frozen registries: magic identifiers on one side,
// opcode tables on the other, sharing a single version canonicalizer.
//
// Build one with New and pass it around explicitly. The value is immutable
// and safe for concurrent readers.
type Catalog struct {
	Magics  *magics.Registry
	Opcodes *opcodes.Registry
}

// New builds the complete catalog from the compiled-in data. Construction
// is all-or-nothing: any consistency failure in either catalog aborts with
// an error and no partial value.
func New() (*Catalog, error) {
	mreg, err := magics.Load()
	if err != nil {
		return nil, err
	}
	oreg, err := opcodes.Load(mreg.Canonicalizer())
	if err != nil {
		return nil, err
	}
	return &Catalog{Magics: mreg, Opcodes: oreg}, nil
}

// Canonicalizer returns the shared version canonicalizer.
func (c *Catalog) Canonicalizer() *magics.Canonicalizer {
	return c.Magics.Canonicalizer()
}

// TableForWord resolves a magic word, as read from a compiled module
// header, to the opcode table of the version it denotes. This is the usual
// front door for a disassembler: header word in, instruction set out.
func (c *Catalog) TableForWord(word int) (*opcodes.Table, error) {
	version, err := c.Magics.VersionFromInt(word)
	if err != nil {
		return nil, err
	}
	return c.Opcodes.Table(version)
}

// TableForRuntime resolves a probed live runtime to its opcode table via
// the magic identifier registered for that runtime's release.
func (c *Catalog) TableForRuntime(info magics.VersionInfo) (*opcodes.Table, error) {
	m, err := c.Magics.RuntimeMagic(info)
	if err != nil {
		return nil, err
	}
	return c.TableForWord(m.Int())
}

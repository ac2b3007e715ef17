package magics

import (
	"testing"

	"github.com/greenozon/python-xdis/errors"
)

func TestRegistry_MagicFor(t *testing.T) {
	reg := mustLoad(t)

	m, err := reg.MagicFor("2.7")
	if err != nil {
		t.Fatalf("MagicFor(2.7) failed: %v", err)
	}
	if m.Int() != 62211 {
		t.Errorf("MagicFor(2.7).Int() = %d, want 62211", m.Int())
	}

	// An alias resolves through its canonical version.
	m2, err := reg.MagicFor("2.7.18")
	if err != nil {
		t.Fatalf("MagicFor(2.7.18) failed: %v", err)
	}
	if m2 != m {
		t.Errorf("MagicFor(2.7.18) = %v, want %v", m2, m)
	}

	if _, err := reg.MagicFor("9.9.9"); !errors.Is(err, errors.ErrUnknownVersion) {
		t.Errorf("MagicFor(9.9.9) error = %v, want unknown_version", err)
	}
}

func TestRegistry_VersionsFor(t *testing.T) {
	reg := mustLoad(t)

	versions, err := reg.VersionsFor(FromInt(62211))
	if err != nil {
		t.Fatalf("VersionsFor failed: %v", err)
	}
	if len(versions) != 1 || versions[0] != "2.7" {
		t.Errorf("VersionsFor(62211) = %v, want [2.7]", versions)
	}

	if _, err := reg.VersionsFor(FromInt(12345)); !errors.Is(err, errors.ErrUnknownMagic) {
		t.Errorf("VersionsFor(12345) error = %v, want unknown_magic", err)
	}
}

func TestRegistry_TwoMagicsOneVersion(t *testing.T) {
	// 62011 and 62021 are two distinct format bumps that both shipped as
	// 2.3a0. Both words stay queryable; MagicFor collapses to the later
	// registration.
	reg := mustLoad(t)

	for _, word := range []int{62011, 62021} {
		versions, err := reg.VersionsFor(FromInt(word))
		if err != nil {
			t.Fatalf("VersionsFor(%d) failed: %v", word, err)
		}
		if len(versions) != 1 || versions[0] != "2.3a0" {
			t.Errorf("VersionsFor(%d) = %v, want [2.3a0]", word, versions)
		}

		v, err := reg.VersionFromInt(word)
		if err != nil {
			t.Fatalf("VersionFromInt(%d) failed: %v", word, err)
		}
		if v != "2.3a0" {
			t.Errorf("VersionFromInt(%d) = %q, want 2.3a0", word, v)
		}
	}

	m, err := reg.MagicFor("2.3a0")
	if err != nil {
		t.Fatalf("MagicFor(2.3a0) failed: %v", err)
	}
	if m.Int() != 62021 {
		t.Errorf("MagicFor(2.3a0).Int() = %d, want 62021 (last registration wins)", m.Int())
	}
}

func TestRegistry_OneMagicTwoVersions(t *testing.T) {
	// Word 3466 was registered for both 3.11a4b and 3.11a4c. The reverse
	// lookup keeps the full set; the forward lookup keeps the last write.
	reg := mustLoad(t)

	versions, err := reg.VersionsFor(FromInt(3466))
	if err != nil {
		t.Fatalf("VersionsFor(3466) failed: %v", err)
	}
	if len(versions) != 2 || versions[0] != "3.11a4b" || versions[1] != "3.11a4c" {
		t.Errorf("VersionsFor(3466) = %v, want [3.11a4b 3.11a4c]", versions)
	}

	v, err := reg.VersionFromInt(3466)
	if err != nil {
		t.Fatalf("VersionFromInt(3466) failed: %v", err)
	}
	if v != "3.11a4c" {
		t.Errorf("VersionFromInt(3466) = %q, want 3.11a4c (last registration wins)", v)
	}
}

func TestRegistry_VersionFromInt(t *testing.T) {
	reg := mustLoad(t)

	tests := []struct {
		word int
		want string
	}{
		{62211, "2.7"},
		{3394, "3.7.0"},
		{39170, "1.0"},
		{62218, "2.7pypy"},
	}

	for _, tt := range tests {
		v, err := reg.VersionFromInt(tt.word)
		if err != nil {
			t.Errorf("VersionFromInt(%d) failed: %v", tt.word, err)
			continue
		}
		if v != tt.want {
			t.Errorf("VersionFromInt(%d) = %q, want %q", tt.word, v, tt.want)
		}
	}

	if _, err := reg.VersionFromInt(1); !errors.Is(err, errors.ErrUnknownMagic) {
		t.Errorf("VersionFromInt(1) error = %v, want unknown_magic", err)
	}
}

func TestRegistry_TupleFromInt(t *testing.T) {
	reg := mustLoad(t)

	tests := []struct {
		word int
		want []int
	}{
		{3394, []int{3, 7, 0}},
		{62211, []int{2, 7}},
		{62021, []int{2, 3}},
	}
	for _, tt := range tests {
		got, err := reg.TupleFromInt(tt.word)
		if err != nil {
			t.Errorf("TupleFromInt(%d) failed: %v", tt.word, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("TupleFromInt(%d) = %v, want %v", tt.word, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("TupleFromInt(%d) = %v, want %v", tt.word, got, tt.want)
				break
			}
		}
	}

	if _, err := reg.TupleFromInt(2); !errors.Is(err, errors.ErrUnknownMagic) {
		t.Errorf("TupleFromInt(2) error = %v, want unknown_magic", err)
	}
}

func TestBuilder_AliasUnknownTarget(t *testing.T) {
	b := NewBuilder()
	b.Register(62211, "2.7")

	if err := b.Aliases("3.5", "3.5.0"); !errors.Is(err, errors.ErrUnknownVersion) {
		t.Errorf("Aliases to unregistered target error = %v, want unknown_version", err)
	}
	if err := b.Aliases("2.7", "2.7.18"); err != nil {
		t.Errorf("Aliases to registered target failed: %v", err)
	}
}

func TestVersionsFor_CopyIsolated(t *testing.T) {
	// Mutating a returned slice must not corrupt the registry.
	reg := mustLoad(t)

	versions, _ := reg.VersionsFor(FromInt(3466))
	versions[0] = "corrupted"

	again, _ := reg.VersionsFor(FromInt(3466))
	if again[0] != "3.11a4b" {
		t.Errorf("registry state leaked through VersionsFor result: %v", again)
	}
}

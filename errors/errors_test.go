package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseBuild,
				Kind:    KindTableConsistency,
				Version: "3.5",
				Detail:  "remove JUMP_FORWARD (110): no such opcode",
			},
			contains: []string{"[build]", "table_consistency", `"3.5"`, "JUMP_FORWARD"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseQuery,
				Kind:  KindUnknownMagic,
			},
			contains: []string{"[query]", "unknown_magic"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:   PhaseProbe,
				Kind:    KindUnresolvedRuntime,
				Version: "3.13.0",
				Cause:   stderrors.New("underlying error"),
			},
			contains: []string{"[probe]", "unresolved_runtime", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, missing %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "sentinel matches any phase",
			err:    UnknownVersion(PhaseQuery, "9.9"),
			target: ErrUnknownVersion,
			want:   true,
		},
		{
			name:   "sentinel matches build phase too",
			err:    UnknownVersion(PhaseBuild, "9.9"),
			target: ErrUnknownVersion,
			want:   true,
		},
		{
			name:   "kind mismatch",
			err:    UnknownVersion(PhaseQuery, "9.9"),
			target: ErrUnknownMagic,
			want:   false,
		},
		{
			name:   "phase-specific target",
			err:    UnknownVersion(PhaseQuery, "9.9"),
			target: &Error{Phase: PhaseBuild, Kind: KindUnknownVersion},
			want:   false,
		},
		{
			name:   "unrelated error",
			err:    stderrors.New("plain"),
			target: ErrUnknownVersion,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := UnresolvedRuntime("3.13.0pypy", cause)

	if !Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !Is(err, ErrUnresolvedRuntime) {
		t.Error("wrapped error lost its kind")
	}
}

func TestError_As(t *testing.T) {
	var structured *Error
	err := UnknownOpcodeName("3.5", "LOAD_NONSENSE")

	if !As(err, &structured) {
		t.Fatal("As() failed for *Error")
	}
	if structured.Version != "3.5" {
		t.Errorf("Version = %q, want %q", structured.Version, "3.5")
	}
	if structured.Value != "LOAD_NONSENSE" {
		t.Errorf("Value = %v, want LOAD_NONSENSE", structured.Value)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantKind Kind
	}{
		{"unknown version", UnknownVersion(PhaseQuery, "0.1"), KindUnknownVersion},
		{"unknown magic", UnknownMagic(PhaseQuery, 12345), KindUnknownMagic},
		{"unresolved runtime", UnresolvedRuntime("4.0.0", nil), KindUnresolvedRuntime},
		{"unknown opcode name", UnknownOpcodeName("2.7", "NOPE"), KindUnknownOpcode},
		{"unknown opcode code", UnknownOpcodeCode("2.7", 250), KindUnknownOpcode},
		{"table consistency", TableConsistency("3.6rc1", "duplicate code %d", 144), KindTableConsistency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.wantKind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

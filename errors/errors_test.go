package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindDuplicateDefinition,
				Op:     "OpTypeInt",
				ID:     7,
				HasID:  true,
				Offset: 40,
				Detail: "already defined",
			},
			contains: []string{"[decode]", "duplicate_definition", "OpTypeInt", "%7", "offset 40", "already defined"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseLookup,
				Kind:   KindUnknownID,
				Offset: NoOffset,
			},
			contains: []string{"[lookup]", "unknown_id"},
			excludes: []string{"offset", "%"},
		},
		{
			name: "validation rule",
			err: &Error{
				Phase:  PhaseValidate,
				Kind:   KindValidation,
				Rule:   "line-file",
				Offset: NoOffset,
			},
			contains: []string{"[validate]", "(line-file)"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindTruncated,
				Offset: 12,
				Detail: "instruction body",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "truncated", "instruction body", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindDuplicateDefinition,
		ID:    3,
		HasID: true,
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindDuplicateDefinition}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseLookup, Kind: KindDuplicateDefinition}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindDuplicateDefinition}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidData).
		Op("OpTypeInt").
		ID(9).
		Offset(64).
		Rule("signedness").
		Value(2).
		Cause(cause).
		Detail("signedness %d out of range", 2).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidData {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
	}
	if err.Op != "OpTypeInt" {
		t.Errorf("Op = %q", err.Op)
	}
	if !err.HasID || err.ID != 9 {
		t.Errorf("ID = %d (set %v), want 9", err.ID, err.HasID)
	}
	if err.Offset != 64 {
		t.Errorf("Offset = %d, want 64", err.Offset)
	}
	if err.Rule != "signedness" {
		t.Errorf("Rule = %q", err.Rule)
	}
	if err.Value != 2 {
		t.Errorf("Value = %v, want 2", err.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("Cause not chained")
	}
	if err.Detail != "signedness 2 out of range" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestBuilder_DefaultOffset(t *testing.T) {
	err := New(PhaseLookup, KindUnknownID).Build()
	if err.Offset != NoOffset {
		t.Errorf("Offset = %d, want NoOffset", err.Offset)
	}
	if err.HasID {
		t.Error("HasID should be false until ID is called")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"unsupported opcode", UnsupportedOpcode(4242, 20), PhaseDecode, KindUnsupportedOpcode},
		{"duplicate", DuplicateDefinition(5, "OpTypeVoid"), PhaseDecode, KindDuplicateDefinition},
		{"unknown id", UnknownID(5), PhaseLookup, KindUnknownID},
		{"type mismatch", TypeMismatch(5, "*spirv.TypeInt", "OpTypeVoid"), PhaseLookup, KindTypeMismatch},
		{"unresolved", Unresolved(5), PhaseLookup, KindUnresolved},
		{"truncated", Truncated(8, "header"), PhaseDecode, KindTruncated},
		{"word count", WordCountMismatch("OpTypeInt", 20, 5, 4), PhaseDecode, KindWordCountMismatch},
		{"header", InvalidHeader("bad magic"), PhaseDecode, KindInvalidHeader},
		{"invalid data", InvalidData(PhaseEncode, NoOffset, "x"), PhaseEncode, KindInvalidData},
		{"validation", Validation(5, true, "OpLine", "line-file", "x"), PhaseValidate, KindValidation},
		{"wrap", Wrap(PhaseRegistry, KindInvalidData, errors.New("x"), "y"), PhaseRegistry, KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
		})
	}

	if msg := UnsupportedOpcode(4242, 20).Error(); !strings.Contains(msg, "4242") {
		t.Errorf("unsupported opcode message %q missing opcode", msg)
	}
	if msg := WordCountMismatch("OpTypeInt", 20, 5, 4).Error(); !strings.Contains(msg, "declared 5 words, decoded 4") {
		t.Errorf("word count message %q", msg)
	}
}

func TestValidationErrors(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		if err := NewValidationErrors(nil); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("batch", func(t *testing.T) {
		err := NewValidationErrors([]*Error{
			Validation(3, true, "OpLine", "line-file", "file is not a string"),
			Validation(9, true, "OpMemberName", "member-name-index", "index 4 >= 2"),
		})

		var ve *ValidationErrors
		if !errors.As(err, &ve) {
			t.Fatalf("expected *ValidationErrors, got %T", err)
		}
		if len(ve.Errors) != 2 {
			t.Fatalf("len = %d, want 2", len(ve.Errors))
		}

		msg := err.Error()
		for _, s := range []string{"2 validation error(s)", "line-file", "member-name-index", "%9"} {
			if !strings.Contains(msg, s) {
				t.Errorf("message %q does not contain %q", msg, s)
			}
		}

		if !errors.Is(err, &Error{Phase: PhaseValidate, Kind: KindValidation}) {
			t.Error("errors.Is should match a batched violation")
		}
		if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncated}) {
			t.Error("errors.Is should not match an unrelated kind")
		}

		rules := ve.Rules()
		if len(rules) != 2 || rules[0] != "line-file" || rules[1] != "member-name-index" {
			t.Errorf("Rules() = %v", rules)
		}
	})
}

package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // word stream to graph
	PhaseEncode   Phase = "encode"   // graph to word stream
	PhaseValidate Phase = "validate" // post-decode structural checks
	PhaseLookup   Phase = "lookup"   // graph queries
	PhaseRegistry Phase = "registry" // opcode factory construction
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedOpcode   Kind = "unsupported_opcode"
	KindDuplicateDefinition Kind = "duplicate_definition"
	KindUnknownID           Kind = "unknown_id"
	KindTypeMismatch        Kind = "type_mismatch"
	KindUnresolved          Kind = "unresolved"
	KindValidation          Kind = "validation"
	KindTruncated           Kind = "truncated"
	KindWordCountMismatch   Kind = "word_count_mismatch"
	KindInvalidHeader       Kind = "invalid_header"
	KindInvalidData         Kind = "invalid_data"
)

// NoOffset marks an error that is not tied to a stream position.
const NoOffset = -1

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Rule   string
	Detail string
	Offset int
	ID     uint32
	HasID  bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Rule != "" {
		b.WriteString(" (")
		b.WriteString(e.Rule)
		b.WriteByte(')')
	}

	if e.Op != "" {
		b.WriteString(" op ")
		b.WriteString(e.Op)
	}

	if e.HasID {
		b.WriteString(" id %")
		b.WriteString(strconv.FormatUint(uint64(e.ID), 10))
	}

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Op sets the opcode name
func (b *Builder) Op(name string) *Builder {
	b.err.Op = name
	return b
}

// ID sets the entity id
func (b *Builder) ID(id uint32) *Builder {
	b.err.ID = id
	b.err.HasID = true
	return b
}

// Offset sets the byte offset in the stream
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Rule sets the violated validation rule
func (b *Builder) Rule(rule string) *Builder {
	b.err.Rule = rule
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedOpcode creates an error for an opcode with no factory entry
func UnsupportedOpcode(opcode uint16, offset int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnsupportedOpcode,
		Offset: offset,
		Detail: fmt.Sprintf("no constructor registered for opcode %d", opcode),
		Value:  opcode,
	}
}

// DuplicateDefinition creates an error for an id resolved twice
func DuplicateDefinition(id uint32, op string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDuplicateDefinition,
		Op:     op,
		ID:     id,
		HasID:  true,
		Offset: NoOffset,
		Detail: "id already has a resolved definition",
	}
}

// UnknownID creates a lookup error for an absent id
func UnknownID(id uint32) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindUnknownID,
		ID:     id,
		HasID:  true,
		Offset: NoOffset,
	}
}

// TypeMismatch creates a lookup error for a variant that does not match the requested shape
func TypeMismatch(id uint32, want, got string) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindTypeMismatch,
		ID:     id,
		HasID:  true,
		Op:     got,
		Offset: NoOffset,
		Detail: fmt.Sprintf("want %s, got %s", want, got),
	}
}

// Unresolved creates an error for a query against a forward placeholder
func Unresolved(id uint32) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindUnresolved,
		ID:     id,
		HasID:  true,
		Offset: NoOffset,
		Detail: "forward reference has no definition yet",
	}
}

// Truncated creates an error for a stream that ends inside an instruction
func Truncated(offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: detail,
	}
}

// WordCountMismatch creates an error for an instruction whose declared size
// differs from the words its variant consumed
func WordCountMismatch(op string, offset int, declared, consumed int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindWordCountMismatch,
		Op:     op,
		Offset: offset,
		Detail: fmt.Sprintf("declared %d words, decoded %d", declared, consumed),
		Value:  declared,
	}
}

// InvalidHeader creates a module header error
func InvalidHeader(detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidHeader,
		Offset: 0,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: detail,
	}
}

// Validation creates a structural rule violation for one entity
func Validation(id uint32, hasID bool, op, rule, detail string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindValidation,
		ID:     id,
		HasID:  hasID,
		Op:     op,
		Rule:   rule,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Offset: NoOffset,
	}
}

// ValidationErrors batches every rule violation found in one pass
type ValidationErrors struct {
	Errors []*Error
}

// NewValidationErrors returns nil when errs is empty so callers can return it directly
func NewValidationErrors(errs []*Error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationErrors{Errors: errs}
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "[validate] validation: no violations"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d validation error(s):", len(e.Errors)))
	for _, err := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Is reports whether target matches this error type or any batched violation
func (e *ValidationErrors) Is(target error) bool {
	if _, ok := target.(*ValidationErrors); ok {
		return true
	}
	for _, err := range e.Errors {
		if err.Is(target) {
			return true
		}
	}
	return false
}

// Rules returns the violated rule names in report order
func (e *ValidationErrors) Rules() []string {
	rules := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		rules = append(rules, err.Rule)
	}
	return rules
}

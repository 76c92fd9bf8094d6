package record

import (
	"fmt"
	"strings"

	"arraystruct/schema"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind categorizes a contract violation.
type Kind int

const (
	_ Kind = iota // skip zero value, it is never reported

	KindDoubleSet    // field already set
	KindIncomplete   // builder incomplete
	KindUnoccupied   // field not set
	KindConsumed     // handle already consumed
	KindOutOfRange   // index out of range
	KindUnknownField // unknown field
	KindArity        // wrong number of values
	KindView         // view does not match shape
)

// ContractError is the panic value raised when a builder or record is used
// in a way that would break its occupancy invariants. It is a programming
// error in the caller, never a runtime condition to retry.
type ContractError struct {
	Op     string
	Kind   Kind
	Shape  string
	Index  int // -1 when not about a single field
	Field  string
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	var b strings.Builder

	b.WriteString("record: ")

	if e.Shape != "" {
		b.WriteString(e.Shape)
		b.WriteByte('.')
	}

	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())

	switch {
	case e.Field != "":
		fmt.Fprintf(&b, " %s (index %d)", e.Field, e.Index)
	case e.Index >= 0:
		fmt.Fprintf(&b, " %d", e.Index)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *ContractError) Unwrap() error {
	return e.Err
}

func violation(op string, kind Kind, s *schema.Schema, index int) *ContractError {
	return &ContractError{
		Op:    op,
		Kind:  kind,
		Shape: s.Name(),
		Index: index,
		Field: s.FieldName(index),
	}
}

func (e *ContractError) detail(format string, args ...any) *ContractError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

func (e *ContractError) cause(err error) *ContractError {
	e.Err = err
	e.Detail = err.Error()

	return e
}

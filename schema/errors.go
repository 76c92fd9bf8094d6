package schema

import "errors"

var (
	ErrInvalidName    = errors.New("shape name must be a valid identifier")
	ErrNoFields       = errors.New("shape must have at least one field")
	ErrInvalidField   = errors.New("field name must be a valid identifier")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrNotStruct      = errors.New("only works with structs")
	ErrEmbedded       = errors.New("only works with structs with named fields")
	ErrMixedTypes     = errors.New("requires all fields to have the same type")
	ErrUnexported     = errors.New("requires all fields to be exported")
	ErrLayout         = errors.New("struct layout does not match shape")
)

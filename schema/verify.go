package schema

import (
	"fmt"

	"arraystruct/internal/diagnostic"
)

// Diagnostic codes reported by Verify.
const (
	CodeInvalidDescription = "invalid-description"
	CodeUnknownShape       = "unknown-shape"
	CodeUndescribedShape   = "undescribed-shape"
	CodeLenMismatch        = "len-mismatch"
	CodeFieldMissing       = "field-missing"
	CodeFieldAdded         = "field-added"
	CodeFieldMoved         = "field-moved"
	CodeConstRenamed       = "const-renamed"
	CodeMatch              = "match"
)

// Verify compares a description with the registered shapes. Anything that
// would change the index of a field, or the arity of a shape, is an error.
func Verify(f *File, reg *Registry) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	described := make(map[string]bool, len(f.Shapes))

	for _, sd := range f.Shapes {
		described[sd.Name] = true

		if _, err := sd.Schema(); err != nil {
			d.AddError(CodeInvalidDescription, err.Error(), sd.Name, "")
			continue
		}

		s, ok := reg.Lookup(sd.Name)
		if !ok {
			d.AddError(CodeUnknownShape, "shape is not compiled into this program", sd.Name, "")
			continue
		}

		d.Merge(verifyShape(sd, s))
	}

	for _, s := range reg.Schemas() {
		if !described[s.Name()] {
			d.AddWarning(CodeUndescribedShape, "shape has no description", s.Name(), "")
		}
	}

	return d
}

func verifyShape(sd ShapeDesc, s *Schema) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if sd.Len() != s.Len() {
		d.AddError(CodeLenMismatch,
			fmt.Sprintf("described with %d fields, compiled with %d", sd.Len(), s.Len()), s.Name(), "")
	}

	if sd.LenConst != "" && sd.LenConst != s.LenConst() {
		d.AddWarning(CodeConstRenamed,
			fmt.Sprintf("length constant %s is now %s", sd.LenConst, s.LenConst()), s.Name(), "")
	}

	seen := make(map[string]bool, sd.Len())

	for _, fd := range sd.Fields {
		seen[fd.Name] = true

		idx, ok := s.Index(fd.Name)
		if !ok {
			d.AddError(CodeFieldMissing, fmt.Sprintf("described at index %d, not compiled", fd.Index), s.Name(), fd.Name)
			continue
		}

		if idx != fd.Index {
			d.AddError(CodeFieldMoved, fmt.Sprintf("described at index %d, compiled at %d", fd.Index, idx), s.Name(), fd.Name)
		}

		if fd.IndexConst != "" && fd.IndexConst != s.IndexConst(fd.Name) {
			d.AddWarning(CodeConstRenamed,
				fmt.Sprintf("index constant %s is now %s", fd.IndexConst, s.IndexConst(fd.Name)), s.Name(), fd.Name)
		}
	}

	for _, fld := range s.Fields() {
		if !seen[fld.Name] {
			d.AddError(CodeFieldAdded, fmt.Sprintf("compiled at index %d, not described", fld.Index), s.Name(), fld.Name)
		}
	}

	if !d.HasErrors() {
		d.AddInfo(CodeMatch, fmt.Sprintf("%d fields match", s.Len()), s.Name(), "")
	}

	return d
}

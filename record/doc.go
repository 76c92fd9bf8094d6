// Package record provides fixed-arity records of one element type and a
// staged builder for them.
//
// A Record[S, T] holds exactly N values of T, where N and the field names
// come from the shape S (see schema.Shape). A Record is always fully
// occupied: it is obtained from Builder.Build, from a complete slice, or
// from another record.
//
// A Builder[S, T] accumulates fields one at a time. It tracks which fields
// are set, refuses to set a field twice and refuses to build until every
// field is set. A builder that is dropped before Build must be closed, which
// releases exactly the fields that were set:
//
//	b := record.Start[rgb.Shape, *Texture]()
//	defer b.Close()
//
//	b.Set(rgb.IdxR, red)
//	if err := loadGreen(b); err != nil {
//		return err // red is released by Close
//	}
//	...
//	return b.Build(), nil // Close is a no-op after Build
//
// TryMap transforms every element through a function that may fail. On
// failure the elements produced so far are released and the error is
// returned unchanged.
//
// # Ownership
//
// Values implementing slot.Releaser are released exactly once by whichever
// builder or record owns them when they are discarded. Records behave like
// slices: copies share cells. Operations that consume a record (TryMap,
// TryMapOpt, Map, Zip, Unzip, IntoView) move the values out and leave the
// input's cells empty; With updates the shared cells in place. A consumed
// record must not be used again.
//
// # Contract violations
//
// Misuse that would otherwise read an empty cell, overwrite a set one or
// build a partial record panics with a *ContractError.
package record

package slot

import "reflect"

// Releaser is implemented by values that own a resource which must be given
// back exactly once, such as a reference-counted handle.
type Releaser interface {
	Release()
}

// Cloner is implemented by values that must be duplicated explicitly, for
// example to take another reference on a shared resource.
type Cloner[T any] interface {
	Clone() T
}

// Release disposes of v. Values that do not implement Releaser, and nil
// pointer-like values, need no disposal.
func Release[T any](v T) {
	r, ok := any(v).(Releaser)
	if !ok || isNil(r) {
		return
	}

	r.Release()
}

// Copy duplicates v through Cloner when implemented and by assignment
// otherwise.
func Copy[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok && !isNil(c) {
		return c.Clone()
	}

	return v
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

package record

import (
	"reflect"
	"sync"

	"arraystruct/schema"
)

type viewKey struct {
	shape *schema.Schema
	view  reflect.Type
	elem  reflect.Type
}

// checkedViews caches the outcome of schema.CheckStruct per view type.
var checkedViews sync.Map // viewKey -> error

func checkView[S schema.Shape, T, V any](op string) {
	s := schema.Of[S]()
	key := viewKey{shape: s, view: reflect.TypeFor[V](), elem: reflect.TypeFor[T]()}

	res, ok := checkedViews.Load(key)
	if !ok {
		err := schema.CheckStruct(s, key.view, key.elem)
		res, _ = checkedViews.LoadOrStore(key, &err)
	}

	if err := *res.(*error); err != nil {
		panic(violation(op, KindView, s, -1).cause(err))
	}
}

// IntoView moves the values of r into the named-field struct V, whose
// fields must be exactly the shape's fields, in index order, all of type T
// (see schema.CheckStruct). r is consumed.
//
//	v := record.IntoView[rgb.View[uint8]](c)
//	fmt.Println(v.R, v.G, v.B)
func IntoView[V any, S schema.Shape, T any](r Record[S, T]) V {
	r.valid("IntoView")
	checkView[S, T, V]("IntoView")

	var out V

	rv := reflect.ValueOf(&out).Elem()
	for i := range r.vals {
		v := r.take(i)
		rv.Field(i).Set(reflect.ValueOf(&v).Elem())
	}

	return out
}

// FromView builds a record from the named-field struct v. It is the inverse
// of IntoView.
func FromView[S schema.Shape, T any, V any](v V) Record[S, T] {
	checkView[S, T, V]("FromView")

	n := schema.Of[S]().Len()
	cells := make([]T, n)

	rv := reflect.ValueOf(&v).Elem()
	for i := range n {
		reflect.ValueOf(&cells[i]).Elem().Set(rv.Field(i))
	}

	return adopt[S](cells)
}

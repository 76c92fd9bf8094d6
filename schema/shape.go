package schema

// Shape identifies a record layout at the type level. Shapes are zero-size
// struct types whose Schema method returns a package-level schema:
//
//	type rgbShape struct{}
//
//	var rgbSchema = schema.MustNew("Rgb", "r", "g", "b")
//
//	func (rgbShape) Schema() *schema.Schema { return rgbSchema }
//
// Records and builders are parameterized by their shape, so values built
// from different shapes are distinct Go types and cannot be combined.
type Shape interface {
	Schema() *Schema
}

// Of returns the schema of shape S.
func Of[S Shape]() *Schema {
	var s S
	return s.Schema()
}

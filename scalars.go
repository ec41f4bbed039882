package gqlvalidate

// Built-in scalar types. Every schema gets these seeded into its type map
// whether or not the schema document redeclares them, mirroring the GraphQL
// specification's implicit scalars.
var (
	Int     = &Scalar{TypeName: "Int"}
	Float   = &Scalar{TypeName: "Float"}
	String  = &Scalar{TypeName: "String"}
	Boolean = &Scalar{TypeName: "Boolean"}
	ID      = &Scalar{TypeName: "ID"}
)

func builtinScalars() []*Scalar {
	return []*Scalar{Int, Float, String, Boolean, ID}
}

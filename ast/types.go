package ast

// Type is a type literal as it appears syntactically in a document: a bare
// name, or that name wrapped in List/NonNull modifiers. It is distinct from
// the resolved schema type that the literal names.
type Type interface {
	Node
	typeLiteral()
}

// Named is a type literal with no List/NonNull wrapping, e.g. `String`.
type Named struct {
	Loc  Location
	Name *Name
}

func (t *Named) GetLoc() Location { return t.Loc }
func (t *Named) typeLiteral()     {}

// List is a type literal of the form `[T]`.
type List struct {
	Loc  Location
	Type Type
}

func (t *List) GetLoc() Location { return t.Loc }
func (t *List) typeLiteral()     {}

// NonNull is a type literal of the form `T!`. Per the GraphQL grammar its
// inner type is always a Named or List, never another NonNull.
type NonNull struct {
	Loc  Location
	Type Type
}

func (t *NonNull) GetLoc() Location { return t.Loc }
func (t *NonNull) typeLiteral()     {}

var (
	_ Type = (*Named)(nil)
	_ Type = (*List)(nil)
	_ Type = (*NonNull)(nil)
)

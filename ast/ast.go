// Package ast defines the immutable tree produced by parsing a GraphQL
// schema or operation document. The validator never constructs these nodes
// itself; it only walks trees handed to it by a parser.
package ast

// Location marks where in the source text a node began. Unlike a full
// lexer position it carries no offset or source reference: the parser that
// produced these nodes is assumed to have already resolved line/column.
type Location struct {
	Line   int
	Column int
}

// Node is implemented by every AST type. GetLoc never returns a pointer so
// that a zero Location (an unknown position) is indistinguishable from a
// missing one, which keeps callers from nil-checking a Location.
type Node interface {
	GetLoc() Location
}

// Name is an identifier: a field name, type name, argument name, and so on.
type Name struct {
	Loc   Location
	Value string
}

func (n *Name) GetLoc() Location { return n.Loc }

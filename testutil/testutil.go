// Package testutil builds small schemas and AST fragments by hand, for use
// in validator tests. There is no parser in this module (lexing/parsing is
// out of scope), so every document under test is assembled directly as
// *ast.* values.
package testutil

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
	"github.com/sprucehealth/gqlvalidate"
	"github.com/sprucehealth/gqlvalidate/ast"
)

// Name builds an *ast.Name with no location information.
func Name(value string) *ast.Name {
	return &ast.Name{Value: value}
}

// Named builds an unwrapped *ast.Named type literal.
func Named(name string) *ast.Named {
	return &ast.Named{Name: Name(name)}
}

// FieldDef builds a schema field definition of a named, non-list, nullable
// type, with no arguments.
func FieldDef(name, typeName string) *ast.FieldDefinition {
	return &ast.FieldDefinition{Name: Name(name), Type: Named(typeName)}
}

func objectDef(name string, fields ...*ast.FieldDefinition) *ast.ObjectDefinition {
	return &ast.ObjectDefinition{Name: Name(name), Fields: fields}
}

// Sel builds a document field selection, optionally with a sub-selection.
func Sel(name string, sub ...ast.Selection) *ast.Field {
	return &ast.Field{Name: Name(name), SelectionSet: SelSet(sub...)}
}

// SelAs builds an aliased document field selection.
func SelAs(alias, name string, sub ...ast.Selection) *ast.Field {
	return &ast.Field{Alias: Name(alias), Name: Name(name), SelectionSet: SelSet(sub...)}
}

// Spread builds a fragment spread selection.
func Spread(name string) *ast.FragmentSpread {
	return &ast.FragmentSpread{Name: Name(name)}
}

// InlineOn builds an inline fragment selection with the given type
// condition.
func InlineOn(typeName string, sub ...ast.Selection) *ast.InlineFragment {
	return &ast.InlineFragment{TypeCondition: Named(typeName), SelectionSet: SelSet(sub...)}
}

// SelSet wraps selections into a *ast.SelectionSet, or returns nil for an
// empty list (a field with no sub-selection, as opposed to one with an
// empty one).
func SelSet(sels ...ast.Selection) *ast.SelectionSet {
	if len(sels) == 0 {
		return nil
	}
	return &ast.SelectionSet{Selections: sels}
}

// Query builds a named query operation.
func Query(name string, sub ...ast.Selection) *ast.OperationDefinition {
	return &ast.OperationDefinition{Operation: ast.OperationTypeQuery, Name: Name(name), SelectionSet: SelSet(sub...)}
}

// AnonQuery builds an anonymous query operation (the `{ ... }` shorthand).
func AnonQuery(sub ...ast.Selection) *ast.OperationDefinition {
	return &ast.OperationDefinition{Operation: ast.OperationTypeQuery, SelectionSet: SelSet(sub...)}
}

// Subscription builds a named subscription operation.
func Subscription(name string, sub ...ast.Selection) *ast.OperationDefinition {
	return &ast.OperationDefinition{Operation: ast.OperationTypeSubscription, Name: Name(name), SelectionSet: SelSet(sub...)}
}

// FragDef builds a fragment definition with the given type condition.
func FragDef(name, typeCondition string, sub ...ast.Selection) *ast.FragmentDefinition {
	return &ast.FragmentDefinition{Name: Name(name), TypeCondition: Named(typeCondition), SelectionSet: SelSet(sub...)}
}

// Doc assembles a document from operation and fragment definitions.
func Doc(defs ...ast.Definition) *ast.Document {
	d := &ast.Document{Definitions: make([]ast.Definition, len(defs))}
	for i, def := range defs {
		d.Definitions[i] = def
	}
	return d
}

// Dump renders v for a test failure message: a deep, field-by-field dump via
// go-spew, followed by kr/pretty's diff-friendly form. Rule closures capture
// nested AST/conflict values that %v renders uselessly (pointers, interface
// values), so a mismatch is otherwise hard to diagnose from a bare Fatalf.
func Dump(v any) string {
	return spew.Sdump(v) + "\n" + pretty.Sprint(v)
}

// DogSchema returns the schema used throughout the fragment and selection
// validation scenarios: a Query.dog root field resolving to a Dog type with
// a mix of leaf and recursive fields.
func DogSchema() *gqlvalidate.Schema {
	doc := &ast.SchemaDocument{
		Definitions: []ast.TypeSystemDefinition{
			objectDef("Query", FieldDef("dog", "Dog")),
			objectDef("Dog",
				FieldDef("name", "String"),
				FieldDef("nickname", "String"),
				FieldDef("barks", "Boolean"),
				FieldDef("barkVolume", "Int"),
				FieldDef("mother", "Dog"),
				FieldDef("father", "Dog"),
			),
		},
	}
	schema, err := gqlvalidate.NewSchema(doc)
	if err != nil {
		panic(err)
	}
	return schema
}

// SimpleSchema returns a minimal single-field schema: Query.foo: String.
func SimpleSchema() *gqlvalidate.Schema {
	doc := &ast.SchemaDocument{
		Definitions: []ast.TypeSystemDefinition{
			objectDef("Query", FieldDef("foo", "String")),
		},
	}
	schema, err := gqlvalidate.NewSchema(doc)
	if err != nil {
		panic(err)
	}
	return schema
}

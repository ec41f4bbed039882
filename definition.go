package gqlvalidate

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
)

// Type is the interface satisfied by every schema type: named types and the
// List/NonNull modifiers that wrap them.
type Type interface {
	Name() string
	String() string
}

var (
	_ Type = (*Scalar)(nil)
	_ Type = (*Object)(nil)
	_ Type = (*Interface)(nil)
	_ Type = (*Union)(nil)
	_ Type = (*Enum)(nil)
	_ Type = (*InputObject)(nil)
	_ Type = (*List)(nil)
	_ Type = (*NonNull)(nil)
)

// Input is the subset of Type usable as an argument, variable, or input
// object field type.
type Input interface {
	Type
}

var (
	_ Input = (*Scalar)(nil)
	_ Input = (*Enum)(nil)
	_ Input = (*InputObject)(nil)
	_ Input = (*List)(nil)
	_ Input = (*NonNull)(nil)
)

// IsInputType reports whether ttype's named type is usable as an input type.
func IsInputType(ttype Type) bool {
	switch GetNamed(ttype).(type) {
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// Output is the subset of Type usable as a field's result type.
type Output interface {
	Type
}

var (
	_ Output = (*Scalar)(nil)
	_ Output = (*Object)(nil)
	_ Output = (*Interface)(nil)
	_ Output = (*Union)(nil)
	_ Output = (*Enum)(nil)
	_ Output = (*List)(nil)
	_ Output = (*NonNull)(nil)
)

// IsOutputType reports whether ttype's named type is usable as a field's
// result type.
func IsOutputType(ttype Type) bool {
	switch GetNamed(ttype).(type) {
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	}
	return false
}

// Leaf is a type with no subfields: a Scalar or an Enum.
type Leaf interface {
	Type
	isLeaf()
}

var (
	_ Leaf = (*Scalar)(nil)
	_ Leaf = (*Enum)(nil)
)

// IsLeafType reports whether ttype's named type is a leaf.
func IsLeafType(ttype Type) bool {
	_, ok := GetNamed(ttype).(Leaf)
	return ok
}

// Composite is a type that a selection set may be rooted at: Object,
// Interface, or Union.
type Composite interface {
	Type
	isComposite()
}

var (
	_ Composite = (*Object)(nil)
	_ Composite = (*Interface)(nil)
	_ Composite = (*Union)(nil)
)

// IsCompositeType reports whether ttype is a Composite. Unlike IsLeafType and
// the others, this does not unwrap List/NonNull: a selection set is only ever
// legal directly on a named composite type, never through its wrapper.
func IsCompositeType(ttype any) bool {
	switch ttype.(type) {
	case *Object, *Interface, *Union:
		return true
	}
	return false
}

// Abstract is a Composite type with more than one possible concrete runtime
// type: Interface or Union.
type Abstract interface {
	Name() string
	isAbstract()
}

var (
	_ Abstract = (*Interface)(nil)
	_ Abstract = (*Union)(nil)
)

// IsAbstractType reports whether ttype is an Interface or Union.
func IsAbstractType(ttype any) bool {
	switch ttype.(type) {
	case *Interface, *Union:
		return true
	}
	return false
}

// GetNullable strips a single NonNull wrapper, if present.
func GetNullable(ttype Type) Type {
	if nn, ok := ttype.(*NonNull); ok {
		return nn.OfType
	}
	return ttype
}

// GetNamed strips every List/NonNull wrapper, returning the innermost named
// type.
func GetNamed(ttype Type) Type {
	for {
		switch t := ttype.(type) {
		case *List:
			ttype = t.OfType
			continue
		case *NonNull:
			ttype = t.OfType
			continue
		}
		return ttype
	}
}

// Scalar is a leaf schema type with no internal structure (String, Int, a
// custom ID type, and so on). The validator never serializes or parses
// scalar values — it only needs a scalar's identity for leaf-selection and
// type-compatibility checks — so unlike the teacher's Scalar this carries no
// Serialize/ParseValue/ParseLiteral functions.
type Scalar struct {
	TypeName string
}

func (s *Scalar) Name() string   { return s.TypeName }
func (s *Scalar) String() string { return s.TypeName }
func (s *Scalar) isLeaf()        {}

// Object is a concrete, selectable schema type with an ordered field set and
// a list of interfaces it implements.
type Object struct {
	TypeName   string
	Interfaces []*Interface
	FieldMap   FieldDefinitionMap
}

func (o *Object) Name() string   { return o.TypeName }
func (o *Object) String() string { return o.TypeName }
func (o *Object) isComposite()   {}

// Fields returns the object's field definitions, keyed by field name.
func (o *Object) Fields() FieldDefinitionMap { return o.FieldMap }

// Field looks up a single field definition by name.
func (o *Object) Field(name string) *FieldDefinition { return o.FieldMap[name] }

// Interface is a schema type whose field set one or more Objects must
// implement; a field typed as an Interface may resolve to any implementor at
// runtime.
type Interface struct {
	TypeName string
	FieldMap FieldDefinitionMap
}

func (i *Interface) Name() string   { return i.TypeName }
func (i *Interface) String() string { return i.TypeName }
func (i *Interface) isComposite()   {}
func (i *Interface) isAbstract()    {}

func (i *Interface) Fields() FieldDefinitionMap { return i.FieldMap }
func (i *Interface) Field(name string) *FieldDefinition { return i.FieldMap[name] }

// Union is a schema type whose value is always one of a fixed list of Object
// types, sharing no common field set of their own.
type Union struct {
	TypeName string
	Members  []*Object
}

func (u *Union) Name() string   { return u.TypeName }
func (u *Union) String() string { return u.TypeName }
func (u *Union) isComposite()   {}
func (u *Union) isAbstract()    {}

// PossibleTypes returns the union's member object types.
func (u *Union) PossibleTypes() []*Object { return u.Members }

// Enum is a leaf schema type whose legal values are a fixed set of names.
type Enum struct {
	TypeName string
	ValueSet []*EnumValueDefinition
}

func (e *Enum) Name() string   { return e.TypeName }
func (e *Enum) String() string { return e.TypeName }
func (e *Enum) isLeaf()        {}

func (e *Enum) Values() []*EnumValueDefinition { return e.ValueSet }

type EnumValueDefinition struct {
	Name string
}

// InputObject is a schema type usable only as an argument, variable, or
// nested input value's type — it has fields but no resolvers, since nothing
// in this module ever executes a query.
type InputObject struct {
	TypeName string
	FieldMap InputObjectFieldMap
}

func (o *InputObject) Name() string   { return o.TypeName }
func (o *InputObject) String() string { return o.TypeName }

func (o *InputObject) Fields() InputObjectFieldMap { return o.FieldMap }
func (o *InputObject) Field(name string) *InputObjectField { return o.FieldMap[name] }

// List is the `[T]` type modifier.
type List struct {
	OfType Type
}

func (l *List) Name() string   { return fmt.Sprintf("%v", l.OfType) }
func (l *List) String() string { return fmt.Sprintf("[%v]", l.OfType) }

// NonNull is the `T!` type modifier. Per the GraphQL grammar its OfType is
// never itself a NonNull.
type NonNull struct {
	OfType Type
}

func (n *NonNull) Name() string   { return fmt.Sprintf("%v!", n.OfType) }
func (n *NonNull) String() string { return n.Name() }

// FieldDefinitionMap indexes a composite type's fields by name.
type FieldDefinitionMap map[string]*FieldDefinition

// FieldDefinition is a single field on an Object or Interface: its result
// type and the arguments it accepts.
type FieldDefinition struct {
	Name string
	Type Output
	Args []*Argument
}

// Arg looks up an argument definition by name.
func (f *FieldDefinition) Arg(name string) *Argument {
	for _, a := range f.Args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Argument is a single named, typed argument accepted by a field or
// directive.
type Argument struct {
	Name         string
	Type         Input
	DefaultValue any
}

// InputObjectFieldMap indexes an input object's fields by name.
type InputObjectFieldMap map[string]*InputObjectField

// InputObjectField is a single field of an InputObject.
type InputObjectField struct {
	Name string
	Type Input
}

var nameRegexp = regexp.MustCompile("^[_a-zA-Z][_a-zA-Z0-9]*$")

func assertValidName(name string) error {
	if !nameRegexp.MatchString(name) {
		return errors.Errorf(`names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but %q does not`, name)
	}
	return nil
}

package ast

// SchemaDocument is the parsed form of a schema definition language
// document: an ordered sequence of type and directive definitions.
type SchemaDocument struct {
	Loc         Location
	Definitions []TypeSystemDefinition
}

func (d *SchemaDocument) GetLoc() Location { return d.Loc }

// TypeSystemDefinition is any top-level definition in a SchemaDocument:
// a type definition, a directive definition, or an explicit `schema { ... }`
// block.
type TypeSystemDefinition interface {
	Node
	typeSystemDefinition()
}

// TypeDefinition is the subset of TypeSystemDefinition that introduces a
// named type: Object, Interface, Union, Scalar, Enum, or InputObject.
type TypeDefinition interface {
	TypeSystemDefinition
	GetName() *Name
}

var (
	_ TypeDefinition = (*ObjectDefinition)(nil)
	_ TypeDefinition = (*InterfaceDefinition)(nil)
	_ TypeDefinition = (*UnionDefinition)(nil)
	_ TypeDefinition = (*ScalarDefinition)(nil)
	_ TypeDefinition = (*EnumDefinition)(nil)
	_ TypeDefinition = (*InputObjectDefinition)(nil)
	_ TypeSystemDefinition = (*DirectiveDefinition)(nil)
	_ TypeSystemDefinition = (*SchemaDefinition)(nil)
)

// SchemaDefinition is an explicit `schema { query: Q, mutation: M, ... }`
// block overriding the default root type names.
type SchemaDefinition struct {
	Loc            Location
	OperationTypes []*OperationTypeDefinition
}

func (d *SchemaDefinition) GetLoc() Location     { return d.Loc }
func (d *SchemaDefinition) typeSystemDefinition() {}

type OperationTypeDefinition struct {
	Loc       Location
	Operation string
	Type      *Named
}

func (d *OperationTypeDefinition) GetLoc() Location { return d.Loc }

type ScalarDefinition struct {
	Loc  Location
	Name *Name
}

func (d *ScalarDefinition) GetLoc() Location     { return d.Loc }
func (d *ScalarDefinition) GetName() *Name       { return d.Name }
func (d *ScalarDefinition) typeSystemDefinition() {}

type ObjectDefinition struct {
	Loc        Location
	Name       *Name
	Interfaces []*Named
	Fields     []*FieldDefinition
}

func (d *ObjectDefinition) GetLoc() Location     { return d.Loc }
func (d *ObjectDefinition) GetName() *Name       { return d.Name }
func (d *ObjectDefinition) typeSystemDefinition() {}

type InterfaceDefinition struct {
	Loc    Location
	Name   *Name
	Fields []*FieldDefinition
}

func (d *InterfaceDefinition) GetLoc() Location     { return d.Loc }
func (d *InterfaceDefinition) GetName() *Name       { return d.Name }
func (d *InterfaceDefinition) typeSystemDefinition() {}

type UnionDefinition struct {
	Loc   Location
	Name  *Name
	Types []*Named
}

func (d *UnionDefinition) GetLoc() Location     { return d.Loc }
func (d *UnionDefinition) GetName() *Name       { return d.Name }
func (d *UnionDefinition) typeSystemDefinition() {}

type EnumDefinition struct {
	Loc    Location
	Name   *Name
	Values []*EnumValueDefinition
}

func (d *EnumDefinition) GetLoc() Location     { return d.Loc }
func (d *EnumDefinition) GetName() *Name       { return d.Name }
func (d *EnumDefinition) typeSystemDefinition() {}

type EnumValueDefinition struct {
	Loc  Location
	Name *Name
}

func (d *EnumValueDefinition) GetLoc() Location { return d.Loc }

type InputObjectDefinition struct {
	Loc    Location
	Name   *Name
	Fields []*InputValueDefinition
}

func (d *InputObjectDefinition) GetLoc() Location     { return d.Loc }
func (d *InputObjectDefinition) GetName() *Name       { return d.Name }
func (d *InputObjectDefinition) typeSystemDefinition() {}

// FieldDefinition is a field in an Object or Interface type definition.
type FieldDefinition struct {
	Loc       Location
	Name      *Name
	Arguments []*InputValueDefinition
	Type      Type
}

func (d *FieldDefinition) GetLoc() Location { return d.Loc }

// InputValueDefinition is an argument definition or an InputObject field.
type InputValueDefinition struct {
	Loc          Location
	Name         *Name
	Type         Type
	DefaultValue Value
}

func (d *InputValueDefinition) GetLoc() Location { return d.Loc }

type DirectiveDefinition struct {
	Loc       Location
	Name      *Name
	Arguments []*InputValueDefinition
	Locations []*Name
}

func (d *DirectiveDefinition) GetLoc() Location     { return d.Loc }
func (d *DirectiveDefinition) typeSystemDefinition() {}

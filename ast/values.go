package ast

// Value is any literal value that can appear in an argument, a list, an
// object field, or a variable's default value.
type Value interface {
	Node
	valueNode()
}

var (
	_ Value = (*NullValue)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*Variable)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)

type NullValue struct{ Loc Location }

func (v *NullValue) GetLoc() Location { return v.Loc }
func (v *NullValue) valueNode()       {}

type IntValue struct {
	Loc   Location
	Value string
}

func (v *IntValue) GetLoc() Location { return v.Loc }
func (v *IntValue) valueNode()       {}

type FloatValue struct {
	Loc   Location
	Value string
}

func (v *FloatValue) GetLoc() Location { return v.Loc }
func (v *FloatValue) valueNode()       {}

type StringValue struct {
	Loc   Location
	Value string
}

func (v *StringValue) GetLoc() Location { return v.Loc }
func (v *StringValue) valueNode()       {}

type BooleanValue struct {
	Loc   Location
	Value bool
}

func (v *BooleanValue) GetLoc() Location { return v.Loc }
func (v *BooleanValue) valueNode()       {}

type EnumValue struct {
	Loc   Location
	Value string
}

func (v *EnumValue) GetLoc() Location { return v.Loc }
func (v *EnumValue) valueNode()       {}

// Variable is a reference to an operation variable, e.g. `$id`.
type Variable struct {
	Loc  Location
	Name *Name
}

func (v *Variable) GetLoc() Location { return v.Loc }
func (v *Variable) valueNode()       {}

type ListValue struct {
	Loc    Location
	Values []Value
}

func (v *ListValue) GetLoc() Location { return v.Loc }
func (v *ListValue) valueNode()       {}

type ObjectValue struct {
	Loc    Location
	Fields []*ObjectField
}

func (v *ObjectValue) GetLoc() Location { return v.Loc }
func (v *ObjectValue) valueNode()       {}

type ObjectField struct {
	Loc   Location
	Name  *Name
	Value Value
}

func (f *ObjectField) GetLoc() Location { return f.Loc }

package gqlvalidate

import (
	"github.com/pkg/errors"
	"github.com/sprucehealth/gqlvalidate/ast"
)

// Schema is the indexed, resolved form of a parsed schema document: O(1)
// lookup of type and directive definitions by name, and the three root
// operation types. It is built once by NewSchema and is immutable and safe
// for concurrent read access thereafter.
type Schema struct {
	types      map[string]Type
	directives map[string]*Directive

	queryType        *Object
	mutationType     *Object
	subscriptionType *Object
}

// Type looks up a named type by name, including the built-in scalars.
func (s *Schema) Type(name string) Type { return s.types[name] }

// Directive looks up a directive definition by name, including @include and
// @skip.
func (s *Schema) Directive(name string) *Directive { return s.directives[name] }

// QueryType returns the schema's query root type, or nil if absent.
func (s *Schema) QueryType() *Object { return s.queryType }

// MutationType returns the schema's mutation root type, or nil if absent.
func (s *Schema) MutationType() *Object { return s.mutationType }

// SubscriptionType returns the schema's subscription root type, or nil if
// absent.
func (s *Schema) SubscriptionType() *Object { return s.subscriptionType }

// RootType returns the root type for the given ast operation kind
// (ast.OperationTypeQuery/Mutation/Subscription), or nil if the schema has
// no such root.
func (s *Schema) RootType(operation string) *Object {
	switch operation {
	case ast.OperationTypeMutation:
		return s.mutationType
	case ast.OperationTypeSubscription:
		return s.subscriptionType
	default:
		return s.queryType
	}
}

// NewSchema indexes a parsed schema document into a Schema. Construction is
// two-pass: the first pass creates a skeleton named type for every type
// definition (so that forward references resolve regardless of declaration
// order), the second resolves every field, argument, interface, and union
// member reference against the now-complete name table. A duplicate type,
// directive, or field name, an unresolvable reference, or a malformed
// identifier is reported as a wrapped Go error, not a panic — schema
// construction failures are a distinct class from document validation errors
// (see gqlerrors.Error). Repeated argument, input-field, and enum-value names
// are not checked.
func NewSchema(doc *ast.SchemaDocument) (*Schema, error) {
	s := &Schema{
		types:      map[string]Type{},
		directives: map[string]*Directive{},
	}
	for _, sc := range builtinScalars() {
		s.types[sc.Name()] = sc
	}
	for _, d := range builtinDirectives() {
		s.directives[d.Name] = d
	}

	var schemaDef *ast.SchemaDefinition
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case ast.TypeDefinition:
			if err := assertValidName(d.GetName().Value); err != nil {
				return nil, errors.Wrapf(err, "type %q", d.GetName().Value)
			}
			if _, exists := s.types[d.GetName().Value]; exists {
				return nil, errors.Errorf("duplicate type name %q", d.GetName().Value)
			}
			s.types[d.GetName().Value] = skeletonType(d)
		case *ast.SchemaDefinition:
			if schemaDef != nil {
				return nil, errors.New("schema may declare at most one schema definition block")
			}
			schemaDef = d
		case *ast.DirectiveDefinition:
			if err := assertValidName(d.Name.Value); err != nil {
				return nil, errors.Wrapf(err, "directive %q", d.Name.Value)
			}
			if _, exists := s.directives[d.Name.Value]; exists {
				return nil, errors.Errorf("duplicate directive name %q", d.Name.Value)
			}
			locs := make([]string, len(d.Locations))
			for i, l := range d.Locations {
				locs[i] = l.Value
			}
			s.directives[d.Name.Value] = &Directive{Name: d.Name.Value, Locations: locs}
		}
	}

	for _, def := range doc.Definitions {
		if dd, ok := def.(*ast.DirectiveDefinition); ok {
			args, err := s.buildArguments(dd.Arguments)
			if err != nil {
				return nil, errors.Wrapf(err, "directive %q", dd.Name.Value)
			}
			s.directives[dd.Name.Value].Args = args
			continue
		}
		td, ok := def.(ast.TypeDefinition)
		if !ok {
			continue
		}
		if err := s.resolveType(td); err != nil {
			return nil, errors.Wrapf(err, "type %q", td.GetName().Value)
		}
	}

	if schemaDef != nil {
		for _, ot := range schemaDef.OperationTypes {
			root, err := s.objectByName(ot.Type.Name.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "schema %s root", ot.Operation)
			}
			switch ot.Operation {
			case ast.OperationTypeQuery:
				s.queryType = root
			case ast.OperationTypeMutation:
				s.mutationType = root
			case ast.OperationTypeSubscription:
				s.subscriptionType = root
			}
		}
	} else {
		if t, ok := s.types["Query"].(*Object); ok {
			s.queryType = t
		}
		if t, ok := s.types["Mutation"].(*Object); ok {
			s.mutationType = t
		}
		if t, ok := s.types["Subscription"].(*Object); ok {
			s.subscriptionType = t
		}
	}

	return s, nil
}

// skeletonType creates a named type with no fields/interfaces/members
// resolved yet, so that pass two can find it by name regardless of
// declaration order.
func skeletonType(d ast.TypeDefinition) Type {
	switch d.(type) {
	case *ast.ScalarDefinition:
		return &Scalar{TypeName: d.GetName().Value}
	case *ast.ObjectDefinition:
		return &Object{TypeName: d.GetName().Value, FieldMap: FieldDefinitionMap{}}
	case *ast.InterfaceDefinition:
		return &Interface{TypeName: d.GetName().Value, FieldMap: FieldDefinitionMap{}}
	case *ast.UnionDefinition:
		return &Union{TypeName: d.GetName().Value}
	case *ast.EnumDefinition:
		return &Enum{TypeName: d.GetName().Value}
	case *ast.InputObjectDefinition:
		return &InputObject{TypeName: d.GetName().Value, FieldMap: InputObjectFieldMap{}}
	default:
		return nil
	}
}

func (s *Schema) resolveType(d ast.TypeDefinition) error {
	switch def := d.(type) {
	case *ast.ObjectDefinition:
		obj := s.types[def.Name.Value].(*Object)
		fields, err := s.buildFieldDefinitions(def.Fields)
		if err != nil {
			return err
		}
		obj.FieldMap = fields
		for _, ifaceRef := range def.Interfaces {
			iface, err := s.interfaceByName(ifaceRef.Name.Value)
			if err != nil {
				return err
			}
			obj.Interfaces = append(obj.Interfaces, iface)
		}
	case *ast.InterfaceDefinition:
		iface := s.types[def.Name.Value].(*Interface)
		fields, err := s.buildFieldDefinitions(def.Fields)
		if err != nil {
			return err
		}
		iface.FieldMap = fields
	case *ast.UnionDefinition:
		u := s.types[def.Name.Value].(*Union)
		for _, ref := range def.Types {
			obj, err := s.objectByName(ref.Name.Value)
			if err != nil {
				return err
			}
			u.Members = append(u.Members, obj)
		}
	case *ast.EnumDefinition:
		e := s.types[def.Name.Value].(*Enum)
		for _, v := range def.Values {
			if err := assertValidName(v.Name.Value); err != nil {
				return err
			}
			e.ValueSet = append(e.ValueSet, &EnumValueDefinition{Name: v.Name.Value})
		}
	case *ast.InputObjectDefinition:
		io := s.types[def.Name.Value].(*InputObject)
		for _, f := range def.Fields {
			if err := assertValidName(f.Name.Value); err != nil {
				return err
			}
			ttype, err := s.typeFromAST(f.Type)
			if err != nil {
				return err
			}
			input, ok := ttype.(Input)
			if !ok {
				return errors.Errorf("field %q must have an input type, got %v", f.Name.Value, ttype)
			}
			io.FieldMap[f.Name.Value] = &InputObjectField{Name: f.Name.Value, Type: input}
		}
	case *ast.ScalarDefinition:
		// no further resolution needed
	}
	return nil
}

func (s *Schema) buildFieldDefinitions(defs []*ast.FieldDefinition) (FieldDefinitionMap, error) {
	out := FieldDefinitionMap{}
	for _, f := range defs {
		if err := assertValidName(f.Name.Value); err != nil {
			return nil, err
		}
		if _, exists := out[f.Name.Value]; exists {
			return nil, errors.Errorf("duplicate field name %q", f.Name.Value)
		}
		ttype, err := s.typeFromAST(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name.Value)
		}
		output, ok := ttype.(Output)
		if !ok {
			return nil, errors.Errorf("field %q must have an output type, got %v", f.Name.Value, ttype)
		}
		args, err := s.buildArguments(f.Arguments)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name.Value)
		}
		out[f.Name.Value] = &FieldDefinition{Name: f.Name.Value, Type: output, Args: args}
	}
	return out, nil
}

func (s *Schema) buildArguments(defs []*ast.InputValueDefinition) ([]*Argument, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	args := make([]*Argument, 0, len(defs))
	for _, a := range defs {
		if err := assertValidName(a.Name.Value); err != nil {
			return nil, err
		}
		ttype, err := s.typeFromAST(a.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", a.Name.Value)
		}
		input, ok := ttype.(Input)
		if !ok {
			return nil, errors.Errorf("argument %q must have an input type, got %v", a.Name.Value, ttype)
		}
		args = append(args, &Argument{Name: a.Name.Value, Type: input})
	}
	return args, nil
}

func (s *Schema) objectByName(name string) (*Object, error) {
	t, ok := s.types[name]
	if !ok {
		return nil, errors.Errorf("unknown type %q", name)
	}
	obj, ok := t.(*Object)
	if !ok {
		return nil, errors.Errorf("type %q is not an object type", name)
	}
	return obj, nil
}

func (s *Schema) interfaceByName(name string) (*Interface, error) {
	t, ok := s.types[name]
	if !ok {
		return nil, errors.Errorf("unknown type %q", name)
	}
	iface, ok := t.(*Interface)
	if !ok {
		return nil, errors.Errorf("type %q is not an interface type", name)
	}
	return iface, nil
}

// typeFromAST resolves a syntactic type literal (possibly wrapped in
// List/NonNull) against the schema's name table.
func (s *Schema) typeFromAST(t ast.Type) (Type, error) {
	switch lit := t.(type) {
	case *ast.List:
		inner, err := s.typeFromAST(lit.Type)
		if err != nil {
			return nil, err
		}
		return &List{OfType: inner}, nil
	case *ast.NonNull:
		inner, err := s.typeFromAST(lit.Type)
		if err != nil {
			return nil, err
		}
		return &NonNull{OfType: inner}, nil
	case *ast.Named:
		named, ok := s.types[lit.Name.Value]
		if !ok {
			return nil, errors.Errorf("unknown type %q", lit.Name.Value)
		}
		return named, nil
	default:
		return nil, errors.Errorf("unsupported type literal %T", t)
	}
}

package gqlvalidate

import "github.com/sprucehealth/gqlvalidate/ast"

// Action controls how the walker proceeds past an Enter hook: continue
// descending as normal, skip the current node's children, or stop the walk
// entirely. Vocabulary grounded in the teacher's visitor package (only
// visitor_test.go survived retrieval, but it fixes this exact three-value
// contract).
type Action int

const (
	ActionNoChange Action = iota
	ActionSkip
	ActionBreak
)

// Hooks is the set of enter/leave callbacks a rule may populate. Every field
// is optional; a nil field behaves as ActionNoChange on enter and a no-op on
// leave. This gives total variant coverage (per spec §6's walker hook
// contract) without forcing every rule to implement every hook, matching the
// teacher's pattern of a rule exposing only the closures it needs.
type Hooks struct {
	EnterDocument func(*Context, *ast.Document) Action
	LeaveDocument func(*Context, *ast.Document)

	EnterOperationDefinition func(*Context, *ast.OperationDefinition) Action
	LeaveOperationDefinition func(*Context, *ast.OperationDefinition)

	EnterFragmentDefinition func(*Context, *ast.FragmentDefinition) Action
	LeaveFragmentDefinition func(*Context, *ast.FragmentDefinition)

	EnterVariableDefinition func(*Context, *ast.VariableDefinition) Action
	LeaveVariableDefinition func(*Context, *ast.VariableDefinition)

	EnterDirective func(*Context, *ast.Directive) Action
	LeaveDirective func(*Context, *ast.Directive)

	EnterArgument func(*Context, *ast.Argument) Action
	LeaveArgument func(*Context, *ast.Argument)

	EnterSelectionSet func(*Context, *ast.SelectionSet) Action
	LeaveSelectionSet func(*Context, *ast.SelectionSet)

	EnterField func(*Context, *ast.Field) Action
	LeaveField func(*Context, *ast.Field)

	EnterFragmentSpread func(*Context, *ast.FragmentSpread) Action
	LeaveFragmentSpread func(*Context, *ast.FragmentSpread)

	EnterInlineFragment func(*Context, *ast.InlineFragment) Action
	LeaveInlineFragment func(*Context, *ast.InlineFragment)

	EnterValue func(*Context, ast.Value) Action
	LeaveValue func(*Context, ast.Value)

	EnterObjectField func(*Context, *ast.ObjectField) Action
	LeaveObjectField func(*Context, *ast.ObjectField)
}

// walk runs a single depth-first traversal of ctx.Document(), invoking h's
// hooks per spec §4.C. The walker itself never descends into a fragment
// spread's target definition (only a rule does that, with its own cycle
// guarding — see the fragment-cycle rule in rules.go): otherwise a cyclic
// fragment document would recurse unboundedly inside the walker itself.
func walk(ctx *Context, h *Hooks) {
	w := &walker{ctx: ctx, h: h}
	w.walkDocument(ctx.document)
}

type walker struct {
	ctx     *Context
	h       *Hooks
	broken  bool
}

func (w *walker) walkDocument(doc *ast.Document) {
	if w.broken {
		return
	}
	action := ActionNoChange
	if w.h.EnterDocument != nil {
		action = w.h.EnterDocument(w.ctx, doc)
	}
	if action != ActionBreak && action != ActionSkip {
		for _, def := range doc.Definitions {
			if w.broken {
				break
			}
			switch d := def.(type) {
			case *ast.FragmentDefinition:
				w.walkFragmentDefinition(d)
			case *ast.OperationDefinition:
				w.walkOperationDefinition(d)
			}
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveDocument != nil {
		w.h.LeaveDocument(w.ctx, doc)
	}
}

func (w *walker) walkFragmentDefinition(def *ast.FragmentDefinition) {
	var literal ast.Type
	if def.TypeCondition != nil {
		literal = def.TypeCondition
	}
	pop := w.ctx.ti.pushType(w.ctx.schema, literal)
	defer pop()

	action := ActionNoChange
	if w.h.EnterFragmentDefinition != nil {
		action = w.h.EnterFragmentDefinition(w.ctx, def)
	}
	if action != ActionBreak && action != ActionSkip {
		w.walkDirectives(def.Directives)
		if !w.broken {
			w.walkSelectionSet(def.SelectionSet)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveFragmentDefinition != nil {
		w.h.LeaveFragmentDefinition(w.ctx, def)
	}
}

func (w *walker) walkOperationDefinition(def *ast.OperationDefinition) {
	root := w.ctx.schema.RootType(def.Operation)
	var literal ast.Type
	if root != nil {
		literal = &ast.Named{Name: &ast.Name{Value: root.Name()}}
	}
	var pop func()
	if root != nil {
		pop = w.ctx.ti.pushResolvedType(root, literal)
	} else {
		pop = w.ctx.ti.pushResolvedType(nil, nil)
	}
	defer pop()

	action := ActionNoChange
	if w.h.EnterOperationDefinition != nil {
		action = w.h.EnterOperationDefinition(w.ctx, def)
	}
	if action != ActionBreak && action != ActionSkip {
		for _, v := range def.VariableDefinitions {
			if w.broken {
				break
			}
			w.walkVariableDefinition(v)
		}
		// Directives on the operation itself: the teacher's walker omits
		// this traversal; the original source flags it as a bug to fix.
		// See SPEC_FULL.md §9.
		if !w.broken {
			w.walkDirectives(def.Directives)
		}
		if !w.broken {
			w.walkSelectionSet(def.SelectionSet)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveOperationDefinition != nil {
		w.h.LeaveOperationDefinition(w.ctx, def)
	}
}

func (w *walker) walkVariableDefinition(def *ast.VariableDefinition) {
	pop := w.ctx.ti.pushInputType(w.ctx.schema, def.Type)
	defer pop()

	action := ActionNoChange
	if w.h.EnterVariableDefinition != nil {
		action = w.h.EnterVariableDefinition(w.ctx, def)
	}
	if action != ActionBreak && action != ActionSkip {
		if def.DefaultValue != nil {
			w.walkValue(def.DefaultValue)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveVariableDefinition != nil {
		w.h.LeaveVariableDefinition(w.ctx, def)
	}
}

func (w *walker) walkDirectives(directives []*ast.Directive) {
	for _, d := range directives {
		if w.broken {
			return
		}
		w.walkDirective(d)
	}
}

func (w *walker) walkDirective(d *ast.Directive) {
	action := ActionNoChange
	if w.h.EnterDirective != nil {
		action = w.h.EnterDirective(w.ctx, d)
	}
	if action != ActionBreak && action != ActionSkip {
		var lookup func(string) *Argument
		if d.Name != nil {
			if dirDef := w.ctx.schema.Directive(d.Name.Value); dirDef != nil {
				lookup = dirDef.Arg
			}
		}
		w.walkArguments(d.Arguments, lookup)
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveDirective != nil {
		w.h.LeaveDirective(w.ctx, d)
	}
}

// walkArguments resolves each argument's declared type via lookup, a
// name->*Argument resolver bound to whichever field or directive definition
// the arguments belong to. lookup may be nil (unresolved parent field or
// directive), in which case every argument's input-type resolves to nil
// rather than panicking.
func (w *walker) walkArguments(arguments []*ast.Argument, lookup func(string) *Argument) {
	for _, a := range arguments {
		if w.broken {
			return
		}
		w.walkArgument(a, lookup)
	}
}

func (w *walker) walkArgument(a *ast.Argument, lookup func(string) *Argument) {
	var resolvedArg *Argument
	if lookup != nil && a.Name != nil {
		resolvedArg = lookup(a.Name.Value)
	}

	var pop func()
	if resolvedArg != nil {
		pop = w.ctx.ti.pushResolvedInputType(resolvedArg.Type, outputTypeLiteral(resolvedArg.Type))
	} else {
		pop = w.ctx.ti.pushResolvedInputType(nil, nil)
	}
	defer pop()

	action := ActionNoChange
	if w.h.EnterArgument != nil {
		action = w.h.EnterArgument(w.ctx, a)
	}
	if action != ActionBreak && action != ActionSkip {
		if a.Value != nil {
			w.walkValue(a.Value)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveArgument != nil {
		w.h.LeaveArgument(w.ctx, a)
	}
}

func (w *walker) walkSelectionSet(ss *ast.SelectionSet) {
	if ss == nil {
		return
	}
	pop := w.ctx.ti.pushParentType()
	defer pop()

	action := ActionNoChange
	if w.h.EnterSelectionSet != nil {
		action = w.h.EnterSelectionSet(w.ctx, ss)
	}
	if action != ActionBreak && action != ActionSkip {
		for _, sel := range ss.Selections {
			if w.broken {
				break
			}
			switch s := sel.(type) {
			case *ast.Field:
				w.walkField(s)
			case *ast.FragmentSpread:
				w.walkFragmentSpread(s)
			case *ast.InlineFragment:
				w.walkInlineFragment(s)
			}
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveSelectionSet != nil {
		w.h.LeaveSelectionSet(w.ctx, ss)
	}
}

func (w *walker) walkField(f *ast.Field) {
	fieldDef, literal := w.resolveFieldDef(f)

	var pop func()
	if fieldDef != nil {
		pop = w.ctx.ti.pushResolvedType(fieldDef.Type, literal)
	} else {
		pop = w.ctx.ti.pushResolvedType(nil, nil)
	}
	defer pop()

	action := ActionNoChange
	if w.h.EnterField != nil {
		action = w.h.EnterField(w.ctx, f)
	}
	if action != ActionBreak && action != ActionSkip {
		var lookup func(string) *Argument
		if fieldDef != nil {
			lookup = fieldDef.Arg
		}
		w.walkArguments(f.Arguments, lookup)
		if !w.broken {
			w.walkDirectives(f.Directives)
		}
		if !w.broken {
			w.walkSelectionSet(f.SelectionSet)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveField != nil {
		w.h.LeaveField(w.ctx, f)
	}
}

// resolveFieldDef looks the field up on the current parent type. __typename
// is handled as the universal meta-field (present on every composite type,
// never declared in the schema document itself); every other lookup comes
// from the parent's own field map and returns nil, nil when the parent has
// no such field — the walker itself never reports that, per spec §4.C.4:
// it's FieldsOnCorrectType's job.
func (w *walker) resolveFieldDef(f *ast.Field) (*FieldDefinition, ast.Type) {
	if f.Name != nil && f.Name.Value == "__typename" {
		return &FieldDefinition{Name: "__typename", Type: String}, &ast.Named{Name: &ast.Name{Value: "String"}}
	}
	parent := w.ctx.CurrentParentType()
	if parent == nil || f.Name == nil {
		return nil, nil
	}
	var fd *FieldDefinition
	switch p := parent.(type) {
	case *Object:
		fd = p.Field(f.Name.Value)
	case *Interface:
		fd = p.Field(f.Name.Value)
	}
	if fd == nil {
		return nil, nil
	}
	return fd, outputTypeLiteral(fd.Type)
}

// outputTypeLiteral rebuilds a synthetic ast.Type literal for a resolved
// schema type, since a field definition only carries the resolved type, not
// the syntactic literal that declared it (the schema document's own literal
// isn't retained past schema construction). This is sufficient for every
// current rule and type-info query: all that's examined about a literal is
// its List/NonNull shape, which this reconstructs exactly.
func outputTypeLiteral(t Type) ast.Type {
	switch tt := t.(type) {
	case *List:
		return &ast.List{Type: outputTypeLiteral(tt.OfType)}
	case *NonNull:
		return &ast.NonNull{Type: outputTypeLiteral(tt.OfType)}
	default:
		if t == nil {
			return nil
		}
		return &ast.Named{Name: &ast.Name{Value: t.Name()}}
	}
}

func (w *walker) walkFragmentSpread(s *ast.FragmentSpread) {
	action := ActionNoChange
	if w.h.EnterFragmentSpread != nil {
		action = w.h.EnterFragmentSpread(w.ctx, s)
	}
	if action != ActionBreak && action != ActionSkip {
		w.walkDirectives(s.Directives)
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveFragmentSpread != nil {
		w.h.LeaveFragmentSpread(w.ctx, s)
	}
}

func (w *walker) walkInlineFragment(f *ast.InlineFragment) {
	var pop func()
	if f.TypeCondition != nil {
		pop = w.ctx.ti.pushType(w.ctx.schema, f.TypeCondition)
	} else {
		// No type-condition: keep the surrounding type in scope by pushing
		// a copy of it rather than leaving the stack untouched, so every
		// push still has a matching pop.
		pop = w.ctx.ti.pushResolvedType(w.ctx.ti.currentType(), w.ctx.ti.currentTypeLiteral())
	}
	defer pop()

	action := ActionNoChange
	if w.h.EnterInlineFragment != nil {
		action = w.h.EnterInlineFragment(w.ctx, f)
	}
	if action != ActionBreak && action != ActionSkip {
		w.walkDirectives(f.Directives)
		if !w.broken {
			w.walkSelectionSet(f.SelectionSet)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveInlineFragment != nil {
		w.h.LeaveInlineFragment(w.ctx, f)
	}
}

func (w *walker) walkValue(v ast.Value) {
	action := ActionNoChange
	if w.h.EnterValue != nil {
		action = w.h.EnterValue(w.ctx, v)
	}
	if action != ActionBreak && action != ActionSkip {
		switch val := v.(type) {
		case *ast.ListValue:
			w.walkListValue(val)
		case *ast.ObjectValue:
			w.walkObjectValue(val)
		}
	}
	if action == ActionBreak {
		w.broken = true
	}
	if w.h.LeaveValue != nil {
		w.h.LeaveValue(w.ctx, v)
	}
}

func (w *walker) walkListValue(v *ast.ListValue) {
	// Derive the element input-type by unwrapping a List-literal once, if
	// the current input-type literal is a List. If no parent input-type is
	// known (e.g. a default value with no declared type in scope — see
	// SPEC_FULL.md §9), this degrades to pushing nil/nil rather than
	// erroring: that is a coercion-phase concern, not validation's.
	literal := w.ctx.ti.currentInputTypeLiteral()
	var elemLiteral ast.Type
	if list, ok := literal.(*ast.List); ok {
		elemLiteral = list.Type
	}
	pop := w.ctx.ti.pushInputType(w.ctx.schema, elemLiteral)
	defer pop()

	for _, elem := range v.Values {
		if w.broken {
			return
		}
		w.walkValue(elem)
	}
}

func (w *walker) walkObjectValue(v *ast.ObjectValue) {
	inputType, _ := GetNamed(w.ctx.ti.currentInputType()).(*InputObject)
	for _, field := range v.Fields {
		if w.broken {
			return
		}
		var fieldLiteral ast.Type
		var fieldType Input
		if inputType != nil && field.Name != nil {
			if f := inputType.Field(field.Name.Value); f != nil {
				fieldType = f.Type
				fieldLiteral = outputTypeLiteral(f.Type)
			}
		}
		pop := w.ctx.ti.pushResolvedInputType(fieldType, fieldLiteral)

		action := ActionNoChange
		if w.h.EnterObjectField != nil {
			action = w.h.EnterObjectField(w.ctx, field)
		}
		if action != ActionBreak && action != ActionSkip && field.Value != nil {
			w.walkValue(field.Value)
		}
		if action == ActionBreak {
			w.broken = true
		}
		if w.h.LeaveObjectField != nil {
			w.h.LeaveObjectField(w.ctx, field)
		}
		pop()
	}
}

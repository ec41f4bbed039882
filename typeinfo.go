package gqlvalidate

import "github.com/sprucehealth/gqlvalidate/ast"

// typeInfo threads type context through the walk: the current type, the
// current parent (selection-set-rooted) type, and the current input type.
// The current type and the current input type are each paired with the
// syntactic type literal that produced it; the parent type has no literal
// stack of its own. Resolved-type
// and literal stacks are pushed and popped together but kept as separate
// slices (see DESIGN.md) because a rule may need the wrapped literal
// independently of the unwrapped named type.
type typeInfo struct {
	typeStack            []Output
	typeLiteralStack     []ast.Type
	parentTypeStack      []Composite
	inputTypeStack       []Input
	inputTypeLiteralStack []ast.Type
}

func (ti *typeInfo) currentType() Output {
	if n := len(ti.typeStack); n > 0 {
		return ti.typeStack[n-1]
	}
	return nil
}

func (ti *typeInfo) currentTypeLiteral() ast.Type {
	if n := len(ti.typeLiteralStack); n > 0 {
		return ti.typeLiteralStack[n-1]
	}
	return nil
}

func (ti *typeInfo) currentParentType() Composite {
	if n := len(ti.parentTypeStack); n > 0 {
		return ti.parentTypeStack[n-1]
	}
	return nil
}

func (ti *typeInfo) currentInputType() Input {
	if n := len(ti.inputTypeStack); n > 0 {
		return ti.inputTypeStack[n-1]
	}
	return nil
}

func (ti *typeInfo) currentInputTypeLiteral() ast.Type {
	if n := len(ti.inputTypeLiteralStack); n > 0 {
		return ti.inputTypeLiteralStack[n-1]
	}
	return nil
}

// pushType resolves literal's inner named type against schema (a nil literal
// or unresolvable name pushes a nil type, which is handled gracefully by
// callers per spec's "walker never panics on an unresolved name"), pushes
// (resolved, literal), and returns a pop func the caller must defer.
func (ti *typeInfo) pushType(schema *Schema, literal ast.Type) func() {
	var resolved Output
	if literal != nil {
		if t, err := schema.typeFromAST(literal); err == nil {
			if out, ok := GetNamed(t).(Output); ok {
				resolved = out
			}
		}
	}
	ti.typeStack = append(ti.typeStack, resolved)
	ti.typeLiteralStack = append(ti.typeLiteralStack, literal)
	return func() {
		ti.typeStack = ti.typeStack[:len(ti.typeStack)-1]
		ti.typeLiteralStack = ti.typeLiteralStack[:len(ti.typeLiteralStack)-1]
	}
}

// pushResolvedType pushes an already-resolved type together with the literal
// the caller supplies for it — used where the walker derives a type directly,
// e.g. a field's declared result type, rather than from a literal in the
// document itself.
func (ti *typeInfo) pushResolvedType(t Output, literal ast.Type) func() {
	ti.typeStack = append(ti.typeStack, t)
	ti.typeLiteralStack = append(ti.typeLiteralStack, literal)
	return func() {
		ti.typeStack = ti.typeStack[:len(ti.typeStack)-1]
		ti.typeLiteralStack = ti.typeLiteralStack[:len(ti.typeLiteralStack)-1]
	}
}

// pushParentType captures the current type, with any List/NonNull wrapping
// removed, as the new parent type (nil if that named type is not composite).
func (ti *typeInfo) pushParentType() func() {
	var parent Composite
	if c, ok := GetNamed(ti.currentType()).(Composite); ok {
		parent = c
	}
	ti.parentTypeStack = append(ti.parentTypeStack, parent)
	return func() {
		ti.parentTypeStack = ti.parentTypeStack[:len(ti.parentTypeStack)-1]
	}
}

func (ti *typeInfo) pushInputType(schema *Schema, literal ast.Type) func() {
	var resolved Input
	if literal != nil {
		if t, err := schema.typeFromAST(literal); err == nil {
			if in, ok := t.(Input); ok {
				resolved = in
			}
		}
	}
	ti.inputTypeStack = append(ti.inputTypeStack, resolved)
	ti.inputTypeLiteralStack = append(ti.inputTypeLiteralStack, literal)
	return func() {
		ti.inputTypeStack = ti.inputTypeStack[:len(ti.inputTypeStack)-1]
		ti.inputTypeLiteralStack = ti.inputTypeLiteralStack[:len(ti.inputTypeLiteralStack)-1]
	}
}

func (ti *typeInfo) pushResolvedInputType(t Input, literal ast.Type) func() {
	ti.inputTypeStack = append(ti.inputTypeStack, t)
	ti.inputTypeLiteralStack = append(ti.inputTypeLiteralStack, literal)
	return func() {
		ti.inputTypeStack = ti.inputTypeStack[:len(ti.inputTypeStack)-1]
		ti.inputTypeLiteralStack = ti.inputTypeLiteralStack[:len(ti.inputTypeLiteralStack)-1]
	}
}

// depth reports the combined depth of all five stacks, used by tests to
// assert stack balance at document-leave (spec §8's "stack balance"
// invariant).
func (ti *typeInfo) depth() int {
	return len(ti.typeStack) + len(ti.typeLiteralStack) + len(ti.parentTypeStack) +
		len(ti.inputTypeStack) + len(ti.inputTypeLiteralStack)
}

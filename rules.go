package gqlvalidate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sprucehealth/gqlvalidate/ast"
)

// LoneAnonymousOperationRule: an anonymous operation (the `{ ... }`
// short-hand) is legal only as the sole operation in the document.
func LoneAnonymousOperationRule() *Hooks {
	var operationCount int
	return &Hooks{
		EnterDocument: func(ctx *Context, doc *ast.Document) Action {
			operationCount = 0
			for _, def := range doc.Definitions {
				if _, ok := def.(*ast.OperationDefinition); ok {
					operationCount++
				}
			}
			return ActionNoChange
		},
		EnterOperationDefinition: func(ctx *Context, def *ast.OperationDefinition) Action {
			if def.IsAnonymous() && operationCount > 1 {
				ctx.ReportError(`This anonymous operation must be the only defined operation.`, def)
			}
			return ActionNoChange
		},
	}
}

// namedOf unwraps List/NonNull to find the inner Named literal, or nil if t
// is nil or not ultimately a Named.
func namedOf(t ast.Type) *ast.Named {
	switch tt := t.(type) {
	case *ast.List:
		return namedOf(tt.Type)
	case *ast.NonNull:
		return namedOf(tt.Type)
	case *ast.Named:
		return tt
	default:
		return nil
	}
}

// KnownTypeNamesRule: every named type referenced by a variable's declared
// type, a fragment's type condition, or an inline fragment's type condition
// must resolve in the schema.
func KnownTypeNamesRule() *Hooks {
	check := func(ctx *Context, t ast.Type) {
		named := namedOf(t)
		if named == nil || named.Name == nil {
			return
		}
		if ctx.Schema().Type(named.Name.Value) == nil {
			ctx.ReportError(fmt.Sprintf(`Unknown type "%v".`, named.Name.Value), named)
		}
	}
	return &Hooks{
		EnterVariableDefinition: func(ctx *Context, def *ast.VariableDefinition) Action {
			check(ctx, def.Type)
			return ActionNoChange
		},
		EnterFragmentDefinition: func(ctx *Context, def *ast.FragmentDefinition) Action {
			if def.TypeCondition != nil {
				check(ctx, def.TypeCondition)
			}
			return ActionNoChange
		},
		EnterInlineFragment: func(ctx *Context, f *ast.InlineFragment) Action {
			if f.TypeCondition != nil {
				check(ctx, f.TypeCondition)
			}
			return ActionNoChange
		},
	}
}

// FieldsOnCorrectTypeRule: every field selected must be defined by its
// parent composite type, or be the universal __typename meta-field.
func FieldsOnCorrectTypeRule() *Hooks {
	return &Hooks{
		EnterField: func(ctx *Context, f *ast.Field) Action {
			if f.Name == nil || f.Name.Value == "__typename" {
				return ActionNoChange
			}
			parent := ctx.CurrentParentType()
			if parent == nil {
				return ActionNoChange
			}
			var fd *FieldDefinition
			switch p := parent.(type) {
			case *Object:
				fd = p.Field(f.Name.Value)
			case *Interface:
				fd = p.Field(f.Name.Value)
			}
			if fd == nil {
				ctx.ReportError(fmt.Sprintf(`Cannot query field "%v" on type "%v".`, f.Name.Value, parent.Name()), f)
			}
			return ActionNoChange
		},
	}
}

// KnownFragmentNamesRule: every fragment spread must name a fragment
// defined somewhere in the document.
func KnownFragmentNamesRule() *Hooks {
	return &Hooks{
		EnterFragmentSpread: func(ctx *Context, s *ast.FragmentSpread) Action {
			name := ""
			if s.Name != nil {
				name = s.Name.Value
			}
			if ctx.Fragment(name) == nil {
				ctx.ReportError(fmt.Sprintf(`Unknown fragment "%v".`, name), s.Name)
			}
			return ActionNoChange
		},
	}
}

// FragmentsOnCompositeTypesRule: a fragment's type condition must name a
// composite type (Object, Interface, or Union) — only composite types admit
// a selection set.
func FragmentsOnCompositeTypesRule() *Hooks {
	return &Hooks{
		EnterInlineFragment: func(ctx *Context, f *ast.InlineFragment) Action {
			ttype := ctx.CurrentType()
			if f.TypeCondition != nil && ttype != nil && !IsCompositeType(ttype) {
				ctx.ReportError(fmt.Sprintf(`Fragment cannot condition on non composite type "%v".`, ttype), f.TypeCondition)
			}
			return ActionNoChange
		},
		EnterFragmentDefinition: func(ctx *Context, def *ast.FragmentDefinition) Action {
			ttype := ctx.CurrentType()
			if ttype == nil || IsCompositeType(ttype) {
				return ActionNoChange
			}
			name := ""
			if def.Name != nil {
				name = def.Name.Value
			}
			condName := ""
			if def.TypeCondition != nil && def.TypeCondition.Name != nil {
				condName = def.TypeCondition.Name.Value
			}
			ctx.ReportError(fmt.Sprintf(`Fragment "%v" cannot condition on non composite type "%v".`, name, condName), def.TypeCondition)
			return ActionNoChange
		},
	}
}

// NoUnusedFragmentsRule: every fragment defined in the document must be
// reachable from at least one operation, directly or via nested spreads.
func NoUnusedFragmentsRule() *Hooks {
	var fragmentDefs []*ast.FragmentDefinition
	var operationDefs []*ast.OperationDefinition
	return &Hooks{
		EnterOperationDefinition: func(ctx *Context, def *ast.OperationDefinition) Action {
			operationDefs = append(operationDefs, def)
			return ActionSkip
		},
		EnterFragmentDefinition: func(ctx *Context, def *ast.FragmentDefinition) Action {
			fragmentDefs = append(fragmentDefs, def)
			return ActionSkip
		},
		LeaveDocument: func(ctx *Context, doc *ast.Document) {
			used := map[string]bool{}
			for _, op := range operationDefs {
				for _, frag := range ctx.RecursivelyReferencedFragments(op) {
					if frag.Name != nil {
						used[frag.Name.Value] = true
					}
				}
			}
			for _, def := range fragmentDefs {
				name := ""
				if def.Name != nil {
					name = def.Name.Value
				}
				if !used[name] {
					ctx.ReportError(fmt.Sprintf(`Fragment "%v" is never used.`, name), def)
				}
			}
		},
	}
}

// LeafFieldSelectionsRule: a field typed as a leaf (Scalar/Enum) must have
// no sub-selection; a field typed as composite must have one.
func LeafFieldSelectionsRule() *Hooks {
	return &Hooks{
		EnterField: func(ctx *Context, f *ast.Field) Action {
			name := ""
			if f.Name != nil {
				name = f.Name.Value
			}
			ttype := ctx.CurrentType()
			if ttype == nil {
				return ActionNoChange
			}
			if IsLeafType(ttype) {
				if f.SelectionSet != nil {
					ctx.ReportError(fmt.Sprintf(`Field "%v" of type "%v" must not have a sub selection.`, name, ttype), f.SelectionSet)
				}
			} else if f.SelectionSet == nil {
				ctx.ReportError(fmt.Sprintf(`Field "%v" of type "%v" must have a sub selection.`, name, ttype), f)
			}
			return ActionNoChange
		},
	}
}

// UniqueOperationNamesRule: two named operations in the same document may
// not share a name. Anonymous operations are exempt — LoneAnonymousOperation
// already governs how many of those a document may contain.
func UniqueOperationNamesRule() *Hooks {
	known := map[string]*ast.Name{}
	return &Hooks{
		EnterOperationDefinition: func(ctx *Context, def *ast.OperationDefinition) Action {
			if def.Name == nil {
				return ActionSkip
			}
			name := def.Name.Value
			if prior, ok := known[name]; ok {
				ctx.ReportError(fmt.Sprintf(`There can only be one operation named "%v".`, name), prior, def.Name)
			} else {
				known[name] = def.Name
			}
			return ActionSkip
		},
	}
}

func singleFieldSubscriptionMessage(name string) string {
	if name != "" {
		return fmt.Sprintf(`Subscription "%v" must select only one top level field.`, name)
	}
	return `Anonymous Subscription must select only one top level field.`
}

// countTopLevelSelections inlines fragment spreads and inline fragments one
// level deep, so that a subscription whose one top-level selection is a
// spread is judged by the selections directly in that spread's body, not by
// its surface field count. Spreads and inline fragments inside that body are
// each counted as one selection and not expanded further.
func countTopLevelSelections(ctx *Context, ss *ast.SelectionSet) int {
	if ss == nil {
		return 0
	}
	count := 0
	for _, sel := range ss.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			count++
		case *ast.InlineFragment:
			if s.SelectionSet != nil {
				count += len(s.SelectionSet.Selections)
			}
		case *ast.FragmentSpread:
			if s.Name == nil {
				continue
			}
			if frag := ctx.Fragment(s.Name.Value); frag != nil && frag.SelectionSet != nil {
				count += len(frag.SelectionSet.Selections)
			}
		}
	}
	return count
}

// SingleFieldSubscriptionsRule: a subscription operation's selection set
// must resolve to exactly one top-level field, so that a single event
// maps unambiguously to a single response shape.
func SingleFieldSubscriptionsRule() *Hooks {
	return &Hooks{
		EnterOperationDefinition: func(ctx *Context, def *ast.OperationDefinition) Action {
			if def.Operation != ast.OperationTypeSubscription || def.SelectionSet == nil {
				return ActionNoChange
			}
			name := ""
			if def.Name != nil {
				name = def.Name.Value
			}
			if countTopLevelSelections(ctx, def.SelectionSet) != 1 {
				ctx.ReportError(singleFieldSubscriptionMessage(name), def)
			}
			return ActionNoChange
		},
	}
}

func cycleErrorMessage(fragName string, spreadNames []string) string {
	via := ""
	if len(spreadNames) > 0 {
		quoted := make([]string, len(spreadNames))
		for i, n := range spreadNames {
			quoted[i] = fmt.Sprintf(`"%v"`, n)
		}
		via = " via " + strings.Join(quoted, ", ")
	}
	return fmt.Sprintf(`Cannot spread fragment "%v" within itself%v.`, fragName, via)
}

// NoFragmentCyclesRule: a fragment may not, directly or transitively
// through other fragment spreads, spread itself. Straightforward DFS over
// the spread graph; does not stop at the first cycle found but continues
// to explore so every cycle in the document is reported once.
func NoFragmentCyclesRule() *Hooks {
	visited := map[string]bool{}
	var spreadPath []*ast.FragmentSpread
	spreadPathIndex := map[string]int{}

	var detect func(fragment *ast.FragmentDefinition, ctx *Context)
	detect = func(fragment *ast.FragmentDefinition, ctx *Context) {
		name := ""
		if fragment.Name != nil {
			name = fragment.Name.Value
		}
		visited[name] = true

		spreads := ctx.FragmentSpreads(fragment)
		if len(spreads) == 0 {
			return
		}
		spreadPathIndex[name] = len(spreadPath)
		for _, spread := range spreads {
			spreadName := ""
			if spread.Name != nil {
				spreadName = spread.Name.Value
			}
			if idx, ok := spreadPathIndex[spreadName]; !ok {
				spreadPath = append(spreadPath, spread)
				if !visited[spreadName] {
					if target := ctx.Fragment(spreadName); target != nil {
						detect(target, ctx)
					}
				}
				spreadPath = spreadPath[:len(spreadPath)-1]
			} else {
				cyclePath := spreadPath[idx:]
				names := make([]string, len(cyclePath))
				nodes := make([]ast.Node, 0, len(cyclePath)+1)
				for i, s := range cyclePath {
					n := ""
					if s.Name != nil {
						n = s.Name.Value
					}
					names[i] = n
					nodes = append(nodes, s)
				}
				nodes = append(nodes, spread)
				ctx.ReportError(cycleErrorMessage(spreadName, names), nodes...)
			}
		}
		delete(spreadPathIndex, name)
	}

	return &Hooks{
		EnterOperationDefinition: func(ctx *Context, def *ast.OperationDefinition) Action {
			return ActionSkip
		},
		EnterFragmentDefinition: func(ctx *Context, def *ast.FragmentDefinition) Action {
			name := ""
			if def.Name != nil {
				name = def.Name.Value
			}
			if !visited[name] {
				detect(def, ctx)
			}
			return ActionSkip
		},
	}
}

// fieldDefPair pairs a field selection with the field definition it
// resolved to (nil if unresolved) and the composite type it was selected
// from, for overlapping-field comparison.
type fieldDefPair struct {
	ParentType Composite
	Field      *ast.Field
	FieldDef   *FieldDefinition
}

// collectFieldASTsAndDefs flattens a selection set into response-key
// buckets, expanding inline fragments and (once each) fragment spreads in
// place.
func collectFieldASTsAndDefs(ctx *Context, parentType Type, ss *ast.SelectionSet, visited map[string]bool, out map[string][]*fieldDefPair) map[string][]*fieldDefPair {
	if out == nil {
		out = map[string][]*fieldDefPair{}
	}
	if visited == nil {
		visited = map[string]bool{}
	}
	if ss == nil {
		return out
	}
	for _, sel := range ss.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			name := ""
			if s.Name != nil {
				name = s.Name.Value
			}
			var fd *FieldDefinition
			switch p := parentType.(type) {
			case *Object:
				fd = p.Field(name)
			case *Interface:
				fd = p.Field(name)
			}
			response := s.ResponseKey()
			var parent Composite
			if c, ok := parentType.(Composite); ok {
				parent = c
			}
			out[response] = append(out[response], &fieldDefPair{ParentType: parent, Field: s, FieldDef: fd})
		case *ast.InlineFragment:
			fragType := parentType
			if s.TypeCondition != nil {
				if t, err := ctx.Schema().typeFromAST(s.TypeCondition); err == nil {
					fragType = t
				}
			}
			out = collectFieldASTsAndDefs(ctx, fragType, s.SelectionSet, visited, out)
		case *ast.FragmentSpread:
			name := ""
			if s.Name != nil {
				name = s.Name.Value
			}
			if visited[name] {
				continue
			}
			visited[name] = true
			frag := ctx.Fragment(name)
			if frag == nil {
				continue
			}
			var fragType Type
			if frag.TypeCondition != nil {
				if t, err := ctx.Schema().typeFromAST(frag.TypeCondition); err == nil {
					fragType = t
				}
			}
			out = collectFieldASTsAndDefs(ctx, fragType, frag.SelectionSet, visited, out)
		}
	}
	return out
}

type nodePair struct{ a, b ast.Node }

// pairSet remembers unordered pairs of nodes already compared, so a
// symmetric comparison is never repeated.
type pairSet struct {
	data map[nodePair]struct{}
}

func newPairSet() *pairSet { return &pairSet{data: map[nodePair]struct{}{}} }

func (p *pairSet) Has(a, b ast.Node) bool {
	if _, ok := p.data[nodePair{a, b}]; ok {
		return true
	}
	_, ok := p.data[nodePair{b, a}]
	return ok
}

func (p *pairSet) Add(a, b ast.Node) {
	p.data[nodePair{a, b}] = struct{}{}
}

type conflictReason struct {
	Name string
	// Message is either a string, a conflictReason, or a []conflictReason
	// (a nested subfield conflict).
	Message any
}

type conflict struct {
	Reason      conflictReason
	FieldsLeft  []ast.Node
	FieldsRight []ast.Node
}

// sameArguments reports whether two argument lists are equal as sets: same
// names, each paired with a structurally equal value.
func sameArguments(args1, args2 []*ast.Argument) bool {
	if len(args1) != len(args2) {
		return false
	}
	for _, a1 := range args1 {
		name1 := ""
		if a1.Name != nil {
			name1 = a1.Name.Value
		}
		var match *ast.Argument
		for _, a2 := range args2 {
			name2 := ""
			if a2.Name != nil {
				name2 = a2.Name.Value
			}
			if name1 == name2 {
				match = a2
				break
			}
		}
		if match == nil || !sameValue(a1.Value, match.Value) {
			return false
		}
	}
	return true
}

// sameValue compares two value literals structurally. There is no printer
// in this module (the AST is consumed, never rendered back to source), so
// equality is decided by recursing through the Value variants directly
// rather than by comparing rendered text.
func sameValue(value1, value2 ast.Value) bool {
	if value1 == nil || value2 == nil {
		return value1 == value2
	}
	switch v1 := value1.(type) {
	case *ast.NullValue:
		_, ok := value2.(*ast.NullValue)
		return ok
	case *ast.IntValue:
		v2, ok := value2.(*ast.IntValue)
		return ok && v1.Value == v2.Value
	case *ast.FloatValue:
		v2, ok := value2.(*ast.FloatValue)
		return ok && v1.Value == v2.Value
	case *ast.StringValue:
		v2, ok := value2.(*ast.StringValue)
		return ok && v1.Value == v2.Value
	case *ast.BooleanValue:
		v2, ok := value2.(*ast.BooleanValue)
		return ok && v1.Value == v2.Value
	case *ast.EnumValue:
		v2, ok := value2.(*ast.EnumValue)
		return ok && v1.Value == v2.Value
	case *ast.Variable:
		v2, ok := value2.(*ast.Variable)
		return ok && v1.Name != nil && v2.Name != nil && v1.Name.Value == v2.Name.Value
	case *ast.ListValue:
		v2, ok := value2.(*ast.ListValue)
		if !ok || len(v1.Values) != len(v2.Values) {
			return false
		}
		for i := range v1.Values {
			if !sameValue(v1.Values[i], v2.Values[i]) {
				return false
			}
		}
		return true
	case *ast.ObjectValue:
		v2, ok := value2.(*ast.ObjectValue)
		if !ok || len(v1.Fields) != len(v2.Fields) {
			return false
		}
		byName := make(map[string]ast.Value, len(v2.Fields))
		for _, f := range v2.Fields {
			if f.Name != nil {
				byName[f.Name.Value] = f.Value
			}
		}
		for _, f := range v1.Fields {
			if f.Name == nil {
				return false
			}
			other, ok := byName[f.Name.Value]
			if !ok || !sameValue(f.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

// doTypesConflict reports whether two field result types could never apply
// to the same value simultaneously. Composite types are never flagged here:
// their fields are compared individually, recursively, by the caller.
func doTypesConflict(type1, type2 Output) bool {
	if l1, ok := type1.(*List); ok {
		if l2, ok := type2.(*List); ok {
			return doTypesConflict(l1.OfType, l2.OfType)
		}
		return true
	}
	if _, ok := type2.(*List); ok {
		return true
	}
	if n1, ok := type1.(*NonNull); ok {
		if n2, ok := type2.(*NonNull); ok {
			return doTypesConflict(n1.OfType, n2.OfType)
		}
		return true
	}
	if _, ok := type2.(*NonNull); ok {
		return true
	}
	if IsLeafType(type1) || IsLeafType(type2) {
		return type1 != type2
	}
	return false
}

// getSubfieldMap produces the combined, flattened subfield map of two
// overlapping fields, so their sub-selections can be compared pairwise too.
func getSubfieldMap(ctx *Context, f1 *ast.Field, type1 Output, f2 *ast.Field, type2 Output) map[string][]*fieldDefPair {
	if f1.SelectionSet == nil || f2.SelectionSet == nil {
		return nil
	}
	visited := map[string]bool{}
	out := collectFieldASTsAndDefs(ctx, GetNamed(type1), f1.SelectionSet, visited, nil)
	out = collectFieldASTsAndDefs(ctx, GetNamed(type2), f2.SelectionSet, visited, out)
	return out
}

// subfieldConflicts rolls up a series of conflicts found between two
// fields' sub-selections into a single conflict describing the outer pair.
func subfieldConflicts(conflicts []*conflict, responseName string, f1, f2 *ast.Field) *conflict {
	if len(conflicts) == 0 {
		return nil
	}
	reasons := make([]conflictReason, 0, len(conflicts))
	left := []ast.Node{f1}
	right := []ast.Node{f2}
	for _, c := range conflicts {
		reasons = append(reasons, c.Reason)
		left = append(left, c.FieldsLeft...)
		right = append(right, c.FieldsRight...)
	}
	return &conflict{
		Reason:      conflictReason{Name: responseName, Message: reasons},
		FieldsLeft:  left,
		FieldsRight: right,
	}
}

// findConflicts pairs up every field sharing a response key and reports
// the conflicts found, in response-key order for determinism.
func findConflicts(ctx *Context, parentFieldsAreMutuallyExclusive bool, fieldMap map[string][]*fieldDefPair, comparedSet *pairSet) []*conflict {
	var conflicts []*conflict
	names := make([]string, 0, len(fieldMap))
	for name := range fieldMap {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fields := fieldMap[name]
		for _, a := range fields {
			for _, b := range fields {
				if c := findConflict(ctx, parentFieldsAreMutuallyExclusive, name, a, b, comparedSet); c != nil {
					conflicts = append(conflicts, c)
				}
			}
		}
	}
	return conflicts
}

// findConflict decides whether two same-response-key field selections can
// coexist: same field name, same arguments, compatible result types, and
// (recursively) mergeable sub-selections — unless their parent types are
// known-distinct concrete object types, in which case they can never be
// selected on the same runtime value and are allowed to diverge freely.
func findConflict(ctx *Context, parentFieldsAreMutuallyExclusive bool, responseName string, field, field2 *fieldDefPair, comparedSet *pairSet) *conflict {
	if field.Field == field2.Field {
		return nil
	}
	if comparedSet.Has(field.Field, field2.Field) {
		return nil
	}
	comparedSet.Add(field.Field, field2.Field)

	var type1, type2 Output
	if field.FieldDef != nil {
		type1 = field.FieldDef.Type
	}
	if field2.FieldDef != nil {
		type2 = field2.FieldDef.Type
	}

	_, parent1IsObject := field.ParentType.(*Object)
	_, parent2IsObject := field2.ParentType.(*Object)
	mutuallyExclusive := parentFieldsAreMutuallyExclusive ||
		(field.ParentType != field2.ParentType && parent1IsObject && parent2IsObject)

	if !mutuallyExclusive {
		name1, name2 := "", ""
		if field.Field.Name != nil {
			name1 = field.Field.Name.Value
		}
		if field2.Field.Name != nil {
			name2 = field2.Field.Name.Value
		}
		if name1 != name2 {
			return &conflict{
				Reason:      conflictReason{Name: responseName, Message: fmt.Sprintf(`%v and %v are different fields`, name1, name2)},
				FieldsLeft:  []ast.Node{field.Field},
				FieldsRight: []ast.Node{field2.Field},
			}
		}
		if !sameArguments(field.Field.Arguments, field2.Field.Arguments) {
			return &conflict{
				Reason:      conflictReason{Name: responseName, Message: `they have differing arguments`},
				FieldsLeft:  []ast.Node{field.Field},
				FieldsRight: []ast.Node{field2.Field},
			}
		}
	}

	if type1 != nil && type2 != nil && doTypesConflict(type1, type2) {
		return &conflict{
			Reason:      conflictReason{Name: responseName, Message: fmt.Sprintf(`they return conflicting types %v and %v`, type1, type2)},
			FieldsLeft:  []ast.Node{field.Field},
			FieldsRight: []ast.Node{field2.Field},
		}
	}

	subFieldMap := getSubfieldMap(ctx, field.Field, type1, field2.Field, type2)
	if subFieldMap != nil {
		sub := findConflicts(ctx, mutuallyExclusive, subFieldMap, comparedSet)
		return subfieldConflicts(sub, responseName, field.Field, field2.Field)
	}
	return nil
}

// OverlappingFieldsCanBeMergedRule: every selection set must be mergeable —
// every pair of selections sharing a response key must agree on field
// name, arguments, and result type, recursively through their
// sub-selections.
func OverlappingFieldsCanBeMergedRule() *Hooks {
	comparedSet := newPairSet()

	var reasonMessage func(message any) string
	reasonMessage = func(message any) string {
		switch reason := message.(type) {
		case string:
			return reason
		case conflictReason:
			return reasonMessage(reason.Message)
		case []conflictReason:
			parts := make([]string, len(reason))
			for i, r := range reason {
				parts[i] = fmt.Sprintf(`subfields "%v" conflict because %v`, r.Name, reasonMessage(r.Message))
			}
			return strings.Join(parts, " and ")
		}
		return ""
	}

	return &Hooks{
		LeaveSelectionSet: func(ctx *Context, ss *ast.SelectionSet) {
			var parent Type
			if p := ctx.CurrentParentType(); p != nil {
				parent = p
			}
			fieldMap := collectFieldASTsAndDefs(ctx, parent, ss, nil, nil)
			conflicts := findConflicts(ctx, false, fieldMap, comparedSet)
			for _, c := range conflicts {
				nodes := make([]ast.Node, 0, len(c.FieldsLeft)+len(c.FieldsRight))
				nodes = append(nodes, c.FieldsLeft...)
				nodes = append(nodes, c.FieldsRight...)
				ctx.ReportError(fmt.Sprintf(
					`Fields "%v" conflict because %v. Use different aliases on the fields to fetch both if this was intentional.`,
					c.Reason.Name, reasonMessage(c.Reason.Message)), nodes...)
			}
		},
	}
}

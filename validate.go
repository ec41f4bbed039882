package gqlvalidate

import (
	"github.com/sprucehealth/gqlvalidate/ast"
	"github.com/sprucehealth/gqlvalidate/gqlerrors"
)

// Rule constructs a fresh, independent Hooks value for one rule. Because a
// rule's mutable state (seen names, visited sets, ...) lives in the closures
// captured by the returned Hooks, calling Rule twice yields two instances
// that can run their own walks without interfering with each other.
type Rule func() *Hooks

// Plan is an ordered list of rules to run against a document.
type Plan []Rule

// DefaultPlan is the full set of rules this module implements: the ten rules
// in the order SPEC_FULL.md §4.F lists them, followed by NoFragmentCyclesRule.
func DefaultPlan() Plan {
	return Plan{
		LoneAnonymousOperationRule,
		KnownTypeNamesRule,
		FieldsOnCorrectTypeRule,
		KnownFragmentNamesRule,
		FragmentsOnCompositeTypesRule,
		NoUnusedFragmentsRule,
		LeafFieldSelectionsRule,
		UniqueOperationNamesRule,
		SingleFieldSubscriptionsRule,
		OverlappingFieldsCanBeMergedRule,
		NoFragmentCyclesRule,
	}
}

// Validate walks document once per rule in plan, against schema, and
// returns every error reported, in plan order and then document order
// within a rule. A nil plan is treated as an empty plan: no rules run, no
// errors are ever reported. Validate never returns early on error — every
// rule always runs its full walk.
func Validate(schema *Schema, document *ast.Document, plan Plan) []*gqlerrors.Error {
	var errs []*gqlerrors.Error
	base := newContext(schema, document)
	for _, rule := range plan {
		ctx := &Context{schema: schema, document: document, fragments: base.fragments}
		walk(ctx, rule())
		errs = append(errs, ctx.Errors()...)
	}
	return errs
}

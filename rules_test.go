package gqlvalidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprucehealth/gqlvalidate"
	"github.com/sprucehealth/gqlvalidate/ast"
	"github.com/sprucehealth/gqlvalidate/testutil"
)

func TestLoneAnonymousOperation_MultipleAnonymous(t *testing.T) {
	schema := testutil.SimpleSchema()
	doc := testutil.Doc(
		testutil.AnonQuery(testutil.Sel("foo")),
		testutil.AnonQuery(testutil.Sel("foo")),
	)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.LoneAnonymousOperationRule})
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, "This anonymous operation must be the only defined operation.", e.Message)
	}
}

func TestLoneAnonymousOperation_SingleAnonymousIsFine(t *testing.T) {
	schema := testutil.SimpleSchema()
	doc := testutil.Doc(testutil.AnonQuery(testutil.Sel("foo")))
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.LoneAnonymousOperationRule})
	assert.Empty(t, errs)
}

func TestKnownTypeNames_UnknownFragmentTypeCondition(t *testing.T) {
	schema := testutil.DogSchema()
	frag := testutil.FragDef("F", "Cat", testutil.Sel("name"))
	doc := testutil.Doc(
		testutil.Query("q", testutil.Sel("dog", testutil.Spread("F"))),
		frag,
	)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.KnownTypeNamesRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if want := `Unknown type "Cat".`; errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestKnownTypeNames_UnknownVariableType(t *testing.T) {
	schema := testutil.DogSchema()
	op := &ast.OperationDefinition{
		Operation: ast.OperationTypeQuery,
		Name:      testutil.Name("q"),
		VariableDefinitions: []*ast.VariableDefinition{
			{Variable: &ast.Variable{Name: testutil.Name("x")}, Type: testutil.Named("Nonexistent")},
		},
		SelectionSet: testutil.SelSet(testutil.Sel("dog", testutil.Sel("name"))),
	}
	doc := testutil.Doc(op)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.KnownTypeNamesRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if want := `Unknown type "Nonexistent".`; errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestFragmentsOnCompositeTypes_LeafTypeCondition(t *testing.T) {
	schema := testutil.DogSchema()
	frag := testutil.FragDef("F", "String", testutil.Sel("name"))
	doc := testutil.Doc(
		testutil.Query("q", testutil.Sel("dog", testutil.Spread("F"))),
		frag,
	)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.FragmentsOnCompositeTypesRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if want := `Fragment "F" cannot condition on non composite type "String".`; errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestNoUnusedFragments(t *testing.T) {
	schema := testutil.DogSchema()
	used := testutil.FragDef("Used", "Dog", testutil.Sel("name"))
	unused := testutil.FragDef("Unused", "Dog", testutil.Sel("name"))
	doc := testutil.Doc(
		testutil.Query("q", testutil.Sel("dog", testutil.Spread("Used"))),
		used,
		unused,
	)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.NoUnusedFragmentsRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if want := `Fragment "Unused" is never used.`; errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestUniqueOperationNames_Duplicate(t *testing.T) {
	schema := testutil.SimpleSchema()
	doc := testutil.Doc(
		testutil.Query("Foo", testutil.Sel("foo")),
		testutil.Query("Foo", testutil.Sel("foo")),
	)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.UniqueOperationNamesRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if want := `There can only be one operation named "Foo".`; errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestUniqueOperationNames_AnonymousExempt(t *testing.T) {
	schema := testutil.SimpleSchema()
	doc := testutil.Doc(
		testutil.AnonQuery(testutil.Sel("foo")),
		testutil.AnonQuery(testutil.Sel("foo")),
	)
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.UniqueOperationNamesRule})
	if len(errs) != 0 {
		t.Fatalf("expected no errors for anonymous operations, got %v", errs)
	}
}

func TestSingleFieldSubscriptions_MultipleFields(t *testing.T) {
	schema := testutil.DogSchema()
	doc := testutil.Doc(testutil.Subscription("Sub", testutil.Sel("dog"), testutil.Sel("dog")))
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.SingleFieldSubscriptionsRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if want := `Subscription "Sub" must select only one top level field.`; errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestSingleFieldSubscriptions_SingleFieldIsFine(t *testing.T) {
	schema := testutil.DogSchema()
	doc := testutil.Doc(testutil.Subscription("Sub", testutil.Sel("dog")))
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.SingleFieldSubscriptionsRule})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestOverlappingFieldsCanBeMerged_ConflictingAliases(t *testing.T) {
	schema := testutil.DogSchema()
	doc := testutil.Doc(testutil.Query("q", testutil.Sel("dog",
		testutil.SelAs("nickname", "name"),
		testutil.SelAs("nickname", "barks"),
	)))
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.OverlappingFieldsCanBeMergedRule})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
}

func TestOverlappingFieldsCanBeMerged_SameFieldTwiceIsFine(t *testing.T) {
	schema := testutil.DogSchema()
	doc := testutil.Doc(testutil.Query("q", testutil.Sel("dog",
		testutil.Sel("name"),
		testutil.Sel("name"),
	)))
	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.OverlappingFieldsCanBeMergedRule})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

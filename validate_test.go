package gqlvalidate_test

import (
	"testing"

	"github.com/sprucehealth/gqlvalidate"
	"github.com/sprucehealth/gqlvalidate/testutil"
)

func TestCyclicFragmentViaAnotherFragment(t *testing.T) {
	schema := testutil.DogSchema()
	bark := testutil.FragDef("bark", "Dog", testutil.Sel("barkVolume"), testutil.Spread("parents"))
	parents := testutil.FragDef("parents", "Dog", testutil.Sel("mother", testutil.Spread("bark")))
	query := testutil.AnonQuery(testutil.Sel("dog", testutil.Sel("nickname"), testutil.Spread("bark"), testutil.Spread("parents")))
	doc := testutil.Doc(query, bark, parents)

	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.NoFragmentCyclesRule})
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	want := `Cannot spread fragment "bark" within itself via "parents".`
	if errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestSelfSpreadingFragment(t *testing.T) {
	schema := testutil.DogSchema()
	dogFields := testutil.FragDef("DogFields", "Dog",
		testutil.Sel("mother", testutil.Spread("DogFields")),
		testutil.Sel("father", testutil.Spread("DogFields")),
	)
	query := testutil.Query("dog", testutil.Sel("dog", testutil.Spread("DogFields")))
	doc := testutil.Doc(query, dogFields)

	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.NoFragmentCyclesRule})
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 errors, got %d: %v", len(errs), errs)
	}
	want := `Cannot spread fragment "DogFields" within itself.`
	for _, e := range errs {
		if e.Message != want {
			t.Fatalf("got %q, want %q", e.Message, want)
		}
	}
}

func TestThreeStepFragmentCycle(t *testing.T) {
	schema := testutil.DogSchema()
	f1 := testutil.FragDef("DogFields1", "Dog", testutil.Sel("barks"), testutil.Spread("DogFields2"))
	f2 := testutil.FragDef("DogFields2", "Dog", testutil.Sel("barkVolume"), testutil.Spread("DogFields3"))
	f3 := testutil.FragDef("DogFields3", "Dog", testutil.Sel("name"), testutil.Spread("DogFields1"))
	query := testutil.Query("dog", testutil.Sel("dog", testutil.Spread("DogFields1")))
	doc := testutil.Doc(query, f1, f2, f3)

	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.Plan{gqlvalidate.NoFragmentCyclesRule})
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	want := `Cannot spread fragment "DogFields1" within itself via "DogFields2", "DogFields3".`
	if errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestValidMinimalQuery(t *testing.T) {
	schema := testutil.SimpleSchema()
	doc := testutil.Doc(testutil.Query("test", testutil.Sel("foo")))

	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.DefaultPlan())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestLeafWithSubSelection(t *testing.T) {
	schema := testutil.SimpleSchema()
	doc := testutil.Doc(testutil.AnonQuery(testutil.Sel("foo", testutil.Sel("bar"))))

	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.DefaultPlan())
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
	want := `Field "foo" of type "String" must not have a sub selection.`
	if errs[0].Message != want {
		t.Fatalf("got %q, want %q", errs[0].Message, want)
	}
}

func TestUnknownFieldAndUnknownFragment(t *testing.T) {
	schema := testutil.DogSchema()
	doc := testutil.Doc(testutil.AnonQuery(
		testutil.Sel("dog", testutil.Sel("unknownField"), testutil.Spread("missing")),
	))

	errs := gqlvalidate.Validate(schema, doc, gqlvalidate.DefaultPlan())
	if len(errs) != 2 {
		t.Fatalf("expected exactly 2 errors, got %d:\n%v", len(errs), testutil.Dump(errs))
	}
	wantField := `Cannot query field "unknownField" on type "Dog".`
	wantFragment := `Unknown fragment "missing".`
	if errs[0].Message != wantField {
		t.Fatalf("error 0: got %q, want %q", errs[0].Message, wantField)
	}
	if errs[1].Message != wantFragment {
		t.Fatalf("error 1: got %q, want %q", errs[1].Message, wantFragment)
	}
}

package gqlvalidate

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sprucehealth/gqlvalidate/ast"
	"github.com/sprucehealth/gqlvalidate/gqlerrors"
	"github.com/sprucehealth/gqlvalidate/testutil"
)

func messages(errs []*gqlerrors.Error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

func dogDoc() *ast.Document {
	return testutil.Doc(
		testutil.Query("dog", testutil.Sel("dog", testutil.Sel("nickname"), testutil.Sel("unknownField"))),
	)
}

// TestStackBalance asserts typeInfo's five stacks are fully unwound once a
// walk over a complete document finishes, regardless of what errors it found
// along the way.
func TestStackBalance(t *testing.T) {
	schema := testutil.DogSchema()
	doc := dogDoc()
	ctx := newContext(schema, doc)
	walk(ctx, FieldsOnCorrectTypeRule())
	if depth := ctx.ti.depth(); depth != 0 {
		t.Fatalf("expected balanced stacks at document-leave, got depth %d", depth)
	}
}

// TestEmptyPlanEmptiesErrors asserts that running no rules at all produces no
// errors, regardless of how malformed the document is.
func TestEmptyPlanEmptiesErrors(t *testing.T) {
	schema := testutil.DogSchema()
	doc := dogDoc()
	errs := Validate(schema, doc, nil)
	if len(errs) != 0 {
		t.Fatalf("expected no errors for an empty plan, got %v", errs)
	}
}

// TestDeterminism asserts that validating the same document against the same
// schema with the same plan twice produces identical errors.
func TestDeterminism(t *testing.T) {
	schema := testutil.DogSchema()
	doc := dogDoc()
	first := Validate(schema, doc, DefaultPlan())
	second := Validate(schema, doc, DefaultPlan())
	if diff := cmp.Diff(messages(first), messages(second)); diff != "" {
		t.Fatalf("two validate calls over the same document diverged (-first +second):\n%s", diff)
	}
}

// TestConcurrentValidate asserts that a *Schema built once is safe to
// validate against concurrently: two goroutines share it with no
// synchronization beyond the WaitGroup used to observe completion.
func TestConcurrentValidate(t *testing.T) {
	schema := testutil.DogSchema()
	doc := dogDoc()
	validate := func() []*gqlerrors.Error {
		return Validate(schema, doc, DefaultPlan())
	}
	var wg sync.WaitGroup
	results := make([][]*gqlerrors.Error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = validate()
	}()
	results[1] = validate()
	wg.Wait()
	if diff := cmp.Diff(messages(results[0]), messages(results[1])); diff != "" {
		t.Fatalf("concurrent validate calls diverged (-goroutine +main):\n%s", diff)
	}
}

// TestMonotonicity asserts that running a larger plan never yields fewer
// errors than a subset of that plan: adding rules only ever adds findings.
func TestMonotonicity(t *testing.T) {
	schema := testutil.DogSchema()
	doc := dogDoc()
	smaller := Validate(schema, doc, Plan{FieldsOnCorrectTypeRule})
	larger := Validate(schema, doc, DefaultPlan())
	if len(larger) < len(smaller) {
		t.Fatalf("expected the full plan to find at least as many errors as a subset, got %d < %d", len(larger), len(smaller))
	}
}

package testutil_test

import (
	"testing"

	"github.com/sprucehealth/gqlvalidate/testutil"
)

func TestDogSchema(t *testing.T) {
	schema := testutil.DogSchema()
	if schema.QueryType() == nil {
		t.Fatal("expected a query root type")
	}
	if schema.QueryType().Field("dog") == nil {
		t.Fatal("expected Query.dog")
	}
	dog := schema.Type("Dog")
	if dog == nil {
		t.Fatal("expected Dog type")
	}
}

func TestSimpleSchema(t *testing.T) {
	schema := testutil.SimpleSchema()
	if schema.QueryType().Field("foo") == nil {
		t.Fatal("expected Query.foo")
	}
}

package gqlvalidate

import "github.com/pkg/errors"

const (
	DirectiveLocationQuery              = "QUERY"
	DirectiveLocationMutation           = "MUTATION"
	DirectiveLocationSubscription       = "SUBSCRIPTION"
	DirectiveLocationField              = "FIELD"
	DirectiveLocationFragmentDefinition = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     = "INLINE_FRAGMENT"
)

// Directive is a schema-declared directive (`@include`, `@skip`, or a
// custom one): a name, the locations it may appear at, and its arguments.
type Directive struct {
	Name      string
	Locations []string
	Args      []*Argument
}

// Arg looks up an argument definition by name.
func (d *Directive) Arg(name string) *Argument {
	for _, a := range d.Args {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func newDirective(name string, locations []string, args []*Argument) (*Directive, error) {
	if name == "" {
		return nil, errors.New("directive must be named")
	}
	if err := assertValidName(name); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, errors.Errorf("directive %q must provide locations", name)
	}
	return &Directive{Name: name, Locations: locations, Args: args}, nil
}

// IncludeDirective is the built-in `@include(if: Boolean!)` directive.
var IncludeDirective = mustDirective(newDirective(
	"include",
	[]string{DirectiveLocationField, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment},
	[]*Argument{{Name: "if", Type: &NonNull{OfType: Boolean}}},
))

// SkipDirective is the built-in `@skip(if: Boolean!)` directive.
var SkipDirective = mustDirective(newDirective(
	"skip",
	[]string{DirectiveLocationField, DirectiveLocationFragmentSpread, DirectiveLocationInlineFragment},
	[]*Argument{{Name: "if", Type: &NonNull{OfType: Boolean}}},
))

func mustDirective(d *Directive, err error) *Directive {
	if err != nil {
		panic(err)
	}
	return d
}

func builtinDirectives() []*Directive {
	return []*Directive{IncludeDirective, SkipDirective}
}

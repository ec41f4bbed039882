package gqlvalidate

import (
	"github.com/sprucehealth/gqlvalidate/ast"
	"github.com/sprucehealth/gqlvalidate/gqlerrors"
)

// Context is the read-only view a rule gets of a single validation call: the
// schema, the document, a pre-built fragment map (component D), and the
// in-progress type-info stacks (component B). A Context is created once per
// rule walk and discarded when that walk returns; its error sink is private
// to that walk.
type Context struct {
	schema    *Schema
	document  *ast.Document
	fragments map[string]*ast.FragmentDefinition

	ti typeInfo

	errs []*gqlerrors.Error
}

// newContext runs the fragment locator pre-pass (component D) once and
// returns a Context ready to drive a rule's walk.
func newContext(schema *Schema, document *ast.Document) *Context {
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, def := range document.Definitions {
		if fd, ok := def.(*ast.FragmentDefinition); ok && fd.Name != nil {
			fragments[fd.Name.Value] = fd
		}
	}
	return &Context{schema: schema, document: document, fragments: fragments}
}

func (c *Context) Schema() *Schema             { return c.schema }
func (c *Context) Document() *ast.Document     { return c.document }
func (c *Context) Fragment(name string) *ast.FragmentDefinition { return c.fragments[name] }

func (c *Context) CurrentType() Output               { return c.ti.currentType() }
func (c *Context) CurrentTypeLiteral() ast.Type       { return c.ti.currentTypeLiteral() }
func (c *Context) CurrentParentType() Composite       { return c.ti.currentParentType() }
func (c *Context) CurrentInputType() Input            { return c.ti.currentInputType() }
func (c *Context) CurrentInputTypeLiteral() ast.Type  { return c.ti.currentInputTypeLiteral() }

// ReportError appends a validation error built from message and the given
// nodes' locations.
func (c *Context) ReportError(message string, nodes ...ast.Node) {
	c.errs = append(c.errs, gqlerrors.New(message, nodes))
}

// Errors returns every error reported on this Context so far, in the order
// reported.
func (c *Context) Errors() []*gqlerrors.Error { return c.errs }

// FragmentSpreads collects, in document order, every *ast.FragmentSpread
// directly reachable from node's own selection tree — descending through
// nested selection sets (fields, inline fragments) but never through another
// fragment's definition. It does not cache: rules in this module call it at
// most once per operation/fragment, so a cache would add bookkeeping with no
// payoff (unlike the teacher's per-call cache in validator.go, which served
// a context reused across many more call sites).
func (c *Context) FragmentSpreads(node ast.HasSelectionSet) []*ast.FragmentSpread {
	var spreads []*ast.FragmentSpread
	var walk func(ss *ast.SelectionSet)
	walk = func(ss *ast.SelectionSet) {
		if ss == nil {
			return
		}
		for _, sel := range ss.Selections {
			switch s := sel.(type) {
			case *ast.FragmentSpread:
				spreads = append(spreads, s)
			case *ast.Field:
				walk(s.SelectionSet)
			case *ast.InlineFragment:
				walk(s.SelectionSet)
			}
		}
	}
	walk(node.GetSelectionSet())
	return spreads
}

// RecursivelyReferencedFragments returns every fragment definition
// transitively reachable from operation's selections, each appearing once,
// in first-reached order.
func (c *Context) RecursivelyReferencedFragments(operation *ast.OperationDefinition) []*ast.FragmentDefinition {
	var result []*ast.FragmentDefinition
	collected := map[string]bool{}
	frontier := c.FragmentSpreads(operation)
	for len(frontier) > 0 {
		spread := frontier[0]
		frontier = frontier[1:]
		if spread.Name == nil || collected[spread.Name.Value] {
			continue
		}
		frag := c.fragments[spread.Name.Value]
		if frag == nil {
			continue
		}
		collected[spread.Name.Value] = true
		result = append(result, frag)
		frontier = append(frontier, c.FragmentSpreads(frag)...)
	}
	return result
}

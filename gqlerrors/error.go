// Package gqlerrors holds the structured error type produced by validation
// rules: a message plus the source locations it concerns.
package gqlerrors

import (
	"github.com/sprucehealth/gqlvalidate/ast"
)

// Error is a single validation failure. Locations is order-preserving (it
// follows Nodes) but not order-significant for equality: two errors with the
// same message and the same set of locations describe the same problem.
type Error struct {
	Message   string
	Nodes     []ast.Node
	Locations []ast.Location
}

// Error implements the standard error interface so a rule's errors can also
// flow through ordinary Go error-handling paths.
func (e *Error) Error() string {
	return e.Message
}

// New builds an Error, deriving Locations from the given nodes' positions.
// A nil entry in nodes is skipped rather than panicking: a rule does not
// always have every node on hand (e.g. an unresolved field definition).
func New(message string, nodes []ast.Node) *Error {
	locs := make([]ast.Location, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		locs = append(locs, n.GetLoc())
	}
	return &Error{
		Message:   message,
		Nodes:     nodes,
		Locations: locs,
	}
}

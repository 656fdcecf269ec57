package check

import (
	"fmt"

	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/rdf"
	"github.com/c360studio/ontolint/vocabulary/sh"
)

// DatatypeTally enforces the maximum sh:datatype count of 1 per
// (class, path) pair: "A shape has at most one value for sh:datatype."
// https://www.w3.org/TR/shacl/#DatatypeConstraintComponent
//
// The count is of distinct datatypes across every property shape a
// class declares for the same path, so two shapes constraining one
// path to different datatypes are a single violation with a tally of 2.
type DatatypeTally struct{}

// Name implements Check.
func (c *DatatypeTally) Name() string { return "max-datatype-count" }

// Description implements Check.
func (c *DatatypeTally) Description() string {
	return "no (class, path) pair declares more than one sh:datatype constraint"
}

// Run implements Check.
func (c *DatatypeTally) Run(g *graph.Graph) ([]Violation, error) {
	type classPath struct {
		class rdf.Term
		path  rdf.Term
	}
	datatypes := make(map[classPath]map[rdf.Term]struct{})

	for _, t := range g.Triples(nil, sh.Property, nil) {
		shape := t.Object
		constraints := g.Objects(shape, sh.Datatype)
		if len(constraints) == 0 {
			continue
		}
		for _, path := range g.Objects(shape, sh.Path) {
			key := classPath{class: t.Subject, path: path}
			set := datatypes[key]
			if set == nil {
				set = make(map[rdf.Term]struct{})
				datatypes[key] = set
			}
			for _, dt := range constraints {
				set[dt] = struct{}{}
			}
		}
	}

	var violations []Violation
	for key, set := range datatypes {
		if len(set) <= 1 {
			continue
		}
		violations = append(violations, Violation{
			Terms:  []rdf.Term{key.class, key.path},
			Detail: fmt.Sprintf("%d distinct sh:datatype values", len(set)),
		})
	}
	sortViolations(violations)
	return violations, nil
}

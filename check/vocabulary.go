package check

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/rdf"
	"github.com/c360studio/ontolint/vocabulary/owl"
	"github.com/c360studio/ontolint/vocabulary/rdfs"
	"github.com/c360studio/ontolint/vocabulary/sh"
)

// ErrNoVocabularyPattern is returned when no semi-open vocabulary
// declaration exists in the graph at all. Zero matches means the
// check has drifted out of alignment with the ontology's modeling
// convention, which is itself a failure.
var ErrNoVocabularyPattern = errors.New("semi-open vocabulary pattern matched nothing")

// VocabularyAlignment enforces that a semi-open vocabulary datatype's
// two enumerant lists agree: the sh:in list of the SHACL member-check
// shape and the owl:oneOf list of the rdfs:Datatype must hold the same
// members in the same order.
//
// Candidate tuples are found by walking
// ?class sh:property/sh:or/rdf:rest*/rdf:first ?shape with
// ?shape sh:datatype ?dt ; sh:in ?shaclList and
// ?dt a rdfs:Datatype ; owl:oneOf ?owlList.
type VocabularyAlignment struct {
	// Logger receives per-tuple debug traces. Defaults to
	// slog.Default when nil.
	Logger *slog.Logger
}

// Name implements Check.
func (c *VocabularyAlignment) Name() string { return "vocabulary-alignment" }

// Description implements Check.
func (c *VocabularyAlignment) Description() string {
	return "every semi-open vocabulary's sh:in list matches its owl:oneOf list"
}

// Run implements Check.
func (c *VocabularyAlignment) Run(g *graph.Graph) ([]Violation, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	type alignmentCase struct {
		class     rdf.Term
		datatype  rdf.Term
		shaclList rdf.Term
		owlList   rdf.Term
	}
	cases := make(map[alignmentCase]struct{})

	for _, t := range g.Triples(nil, sh.Property, nil) {
		for _, orList := range g.Objects(t.Object, sh.Or) {
			for _, shape := range g.Members(orList) {
				for _, datatype := range g.Objects(shape, sh.Datatype) {
					if !g.Has(datatype, rdf.Type, rdfs.Datatype) {
						continue
					}
					for _, shaclList := range g.Objects(shape, sh.In) {
						for _, owlList := range g.Objects(datatype, owl.OneOf) {
							cases[alignmentCase{
								class:     t.Subject,
								datatype:  datatype,
								shaclList: shaclList,
								owlList:   owlList,
							}] = struct{}{}
						}
					}
				}
			}
		}
	}
	if len(cases) == 0 {
		return nil, ErrNoVocabularyPattern
	}

	var violations []Violation
	for tc := range cases {
		if tc.shaclList == tc.owlList {
			// Same node, nothing to compare.
			continue
		}
		if tc.shaclList.Kind() == rdf.KindIRI && tc.owlList.Kind() == rdf.KindIRI {
			violations = append(violations, Violation{
				Terms:  []rdf.Term{tc.class, tc.datatype},
				Detail: "sh:in and owl:oneOf reference different named lists",
			})
			continue
		}

		shaclMembers, err := g.List(tc.shaclList)
		if err != nil {
			return nil, fmt.Errorf("materialize sh:in list of %s: %w", tc.datatype, err)
		}
		owlMembers, err := g.List(tc.owlList)
		if err != nil {
			return nil, fmt.Errorf("materialize owl:oneOf list of %s: %w", tc.datatype, err)
		}

		if slices.Equal(shaclMembers, owlMembers) {
			logger.Debug("enumerant lists match",
				"class", tc.class.String(),
				"datatype", tc.datatype.String())
			continue
		}
		violations = append(violations, Violation{
			Terms: []rdf.Term{tc.class, tc.datatype},
			Detail: fmt.Sprintf("sh:in %s != owl:oneOf %s",
				formatSequence(shaclMembers), formatSequence(owlMembers)),
		})
	}
	sortViolations(violations)
	return violations, nil
}

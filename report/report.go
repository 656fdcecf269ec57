// Package report reads SHACL validation-report graphs and compares
// their contents against expected outcomes. A report graph is the
// output of a SHACL validator: one sh:ValidationReport node with a
// sh:conforms flag and zero or more sh:ValidationResult nodes.
package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/rdf"
	"github.com/c360studio/ontolint/vocabulary/sh"
)

// ErrNoReport is returned when a graph holds no sh:ValidationReport.
var ErrNoReport = errors.New("no sh:ValidationReport node found")

// Entry is one sh:ValidationResult drawn from a report graph. Values
// are the plain string forms of the nodes: bare IRIs for named nodes
// and lexical values for literals.
type Entry struct {
	FocusNode  string
	ResultPath string
	Severity   string
}

// FocusSeverity pairs a focus node with the severity reported for it.
type FocusSeverity struct {
	FocusNode string
	Severity  string
}

// Report is the parsed content of a SHACL validation report.
type Report struct {
	Conforms bool
	Entries  []Entry
}

// Parse extracts the validation report from g.
func Parse(g *graph.Graph) (*Report, error) {
	reports := g.Subjects(rdf.Type, sh.ValidationReport)
	if len(reports) == 0 {
		return nil, ErrNoReport
	}
	node := reports[0]

	conformsTerm, ok := g.Object(node, sh.Conforms)
	if !ok {
		return nil, fmt.Errorf("report %s has no sh:conforms value", node)
	}
	conformsLit, ok := conformsTerm.(rdf.Literal)
	if !ok {
		return nil, fmt.Errorf("report %s: sh:conforms is not a literal", node)
	}

	r := &Report{Conforms: conformsLit.Value == "true"}
	for _, result := range g.Objects(node, sh.Result) {
		if !g.Has(result, rdf.Type, sh.ValidationResult) {
			continue
		}
		entry := Entry{}
		if focus, ok := g.Object(result, sh.FocusNode); ok {
			entry.FocusNode = plainValue(focus)
		}
		if path, ok := g.Object(result, sh.ResultPath); ok {
			entry.ResultPath = plainValue(path)
		}
		if severity, ok := g.Object(result, sh.ResultSeverity); ok {
			entry.Severity = plainValue(severity)
		}
		r.Entries = append(r.Entries, entry)
	}

	sort.Slice(r.Entries, func(i, j int) bool {
		a, b := r.Entries[i], r.Entries[j]
		if a.FocusNode != b.FocusNode {
			return a.FocusNode < b.FocusNode
		}
		if a.ResultPath != b.ResultPath {
			return a.ResultPath < b.ResultPath
		}
		return a.Severity < b.Severity
	})
	return r, nil
}

// ParseFile loads the Turtle document at path and parses its report.
func ParseFile(path string) (*Report, error) {
	g, err := graph.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(g)
}

// FocusNodeSeverities returns the distinct (focus node, severity)
// pairs in the report.
func (r *Report) FocusNodeSeverities() map[FocusSeverity]struct{} {
	set := make(map[FocusSeverity]struct{})
	for _, e := range r.Entries {
		set[FocusSeverity{FocusNode: e.FocusNode, Severity: e.Severity}] = struct{}{}
	}
	return set
}

// ResultPaths returns the distinct result paths in the report.
func (r *Report) ResultPaths() map[string]struct{} {
	set := make(map[string]struct{})
	for _, e := range r.Entries {
		if e.ResultPath != "" {
			set[e.ResultPath] = struct{}{}
		}
	}
	return set
}

// Expectation describes the outcome a validation report should hold.
// Nil slices are not compared, so an expectation can pin down just the
// conformance flag, just the paths, or both.
type Expectation struct {
	Conforms            bool
	FocusNodeSeverities []FocusSeverity
	ResultPaths         []string
}

// Verify compares the report against exp, returning a descriptive
// error on the first mismatch.
func (r *Report) Verify(exp Expectation) error {
	if r.Conforms != exp.Conforms {
		return fmt.Errorf("sh:conforms is %t, expected %t", r.Conforms, exp.Conforms)
	}

	if exp.FocusNodeSeverities != nil {
		expected := make(map[FocusSeverity]struct{}, len(exp.FocusNodeSeverities))
		for _, fs := range exp.FocusNodeSeverities {
			expected[fs] = struct{}{}
		}
		computed := r.FocusNodeSeverities()
		if err := compareSets(expected, computed, "focus node severity"); err != nil {
			return err
		}
	}

	if exp.ResultPaths != nil {
		expected := make(map[string]struct{}, len(exp.ResultPaths))
		for _, p := range exp.ResultPaths {
			expected[p] = struct{}{}
		}
		computed := r.ResultPaths()
		if err := compareSets(expected, computed, "result path"); err != nil {
			return err
		}
	}
	return nil
}

func compareSets[K comparable](expected, computed map[K]struct{}, what string) error {
	for k := range expected {
		if _, ok := computed[k]; !ok {
			return fmt.Errorf("missing %s %v", what, k)
		}
	}
	for k := range computed {
		if _, ok := expected[k]; !ok {
			return fmt.Errorf("unexpected %s %v", what, k)
		}
	}
	return nil
}

// plainValue returns the string form used for report comparisons:
// bare IRIs for named nodes, lexical values for literals.
func plainValue(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return string(v)
	case rdf.Literal:
		return v.Value
	default:
		return t.String()
	}
}

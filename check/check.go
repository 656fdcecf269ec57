// Package check implements structural consistency checks over an
// ontology graph. Each check computes a set of violating tuples; an
// empty set means the check passed, and a non-empty set carries the
// offending nodes for diagnosis. Checks are independent of one
// another: one failure never blocks the rest of a run.
package check

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/rdf"
)

// Violation is a single offending tuple produced by a check.
type Violation struct {
	// Terms identifies the offending nodes, in check-specific order.
	Terms []rdf.Term

	// Detail describes the violation for diagnostic output.
	Detail string
}

func (v Violation) String() string {
	parts := make([]string, 0, len(v.Terms))
	for _, t := range v.Terms {
		parts = append(parts, t.String())
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, " "), v.Detail)
}

// Result is the outcome of running one check against a graph.
type Result struct {
	// Check is the name of the check that produced this result.
	Check string

	// Passed is true when the check ran and found no violations.
	Passed bool

	// Violations is the computed violation set, empty on success.
	Violations []Violation

	// Err is set when the check could not run at all, as distinct
	// from running and finding violations.
	Err error
}

// Check is a single consistency check over an ontology graph.
type Check interface {
	// Name is the stable identifier used in config and output.
	Name() string

	// Description is a one-line summary of the invariant enforced.
	Description() string

	// Run computes the violation set for g. A returned error means
	// the check could not be evaluated, not that the graph failed it.
	Run(g *graph.Graph) ([]Violation, error)
}

// Registry manages the available checks.
type Registry struct {
	mu     sync.RWMutex
	checks map[string]Check
}

// DefaultRegistry is the global registry holding the built-in checks.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry populated with the built-in checks.
func NewRegistry() *Registry {
	r := &Registry{checks: make(map[string]Check)}
	r.Register(&DatatypeTally{})
	r.Register(&VocabularyAlignment{})
	return r
}

// Register adds a check to the registry, replacing any check with the
// same name.
func (r *Registry) Register(c Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[c.Name()] = c
}

// Get returns the named check, or nil if it is not registered.
func (r *Registry) Get(name string) Check {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.checks[name]
}

// Names returns the registered check names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatSequence renders a materialized list for violation output.
func formatSequence(members []rdf.Term) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, m.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// sortViolations orders a violation set for deterministic output.
func sortViolations(violations []Violation) {
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].String() < violations[j].String()
	})
}

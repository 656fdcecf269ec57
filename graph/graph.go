// Package graph provides an in-memory triple store with pattern
// matching over subject and predicate indexes, plus traversal helpers
// for RDF collections. A graph is loaded once and treated as read-only
// afterward; no locking is needed because checks never mutate it.
package graph

import (
	"errors"
	"fmt"
	"io"

	"github.com/c360studio/ontolint/rdf"
	"github.com/c360studio/ontolint/rdf/turtle"
)

// ErrEmptyGraph is returned when a loaded document contains no triples.
var ErrEmptyGraph = errors.New("graph contains no triples")

// Graph is an in-memory triple store.
type Graph struct {
	triples []rdf.Triple

	// spo indexes objects by subject then predicate; pos indexes
	// subjects by predicate then object.
	spo map[rdf.Term]map[rdf.IRI][]rdf.Term
	pos map[rdf.IRI]map[rdf.Term][]rdf.Term
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		spo: make(map[rdf.Term]map[rdf.IRI][]rdf.Term),
		pos: make(map[rdf.IRI]map[rdf.Term][]rdf.Term),
	}
}

// Load parses Turtle from r into a new graph. A document that parses
// to zero triples is an error: an empty fixture means the suite has
// nothing to check.
func Load(r io.Reader) (*Graph, error) {
	triples, err := turtle.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromTriples(triples)
}

// LoadFile parses the Turtle document at path into a new graph.
func LoadFile(path string) (*Graph, error) {
	triples, err := turtle.ParseFile(path)
	if err != nil {
		return nil, err
	}
	g, err := fromTriples(triples)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadString parses a Turtle document held in a string.
func LoadString(doc string) (*Graph, error) {
	triples, err := turtle.ParseString(doc)
	if err != nil {
		return nil, err
	}
	return fromTriples(triples)
}

func fromTriples(triples []rdf.Triple) (*Graph, error) {
	if len(triples) == 0 {
		return nil, ErrEmptyGraph
	}
	g := New()
	for _, t := range triples {
		g.Add(t)
	}
	return g, nil
}

// Add inserts a triple. Duplicate triples are kept; checks count
// distinct values themselves where it matters.
func (g *Graph) Add(t rdf.Triple) {
	g.triples = append(g.triples, t)

	bySubject, ok := g.spo[t.Subject]
	if !ok {
		bySubject = make(map[rdf.IRI][]rdf.Term)
		g.spo[t.Subject] = bySubject
	}
	bySubject[t.Predicate] = append(bySubject[t.Predicate], t.Object)

	byPredicate, ok := g.pos[t.Predicate]
	if !ok {
		byPredicate = make(map[rdf.Term][]rdf.Term)
		g.pos[t.Predicate] = byPredicate
	}
	byPredicate[t.Object] = append(byPredicate[t.Object], t.Subject)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns every triple matching the pattern. A nil subject or
// object, or an empty predicate, acts as a wildcard.
func (g *Graph) Triples(subject rdf.Term, predicate rdf.IRI, object rdf.Term) []rdf.Triple {
	var out []rdf.Triple
	switch {
	case subject != nil:
		for pred, objects := range g.spo[subject] {
			if predicate != "" && pred != predicate {
				continue
			}
			for _, o := range objects {
				if object != nil && o != object {
					continue
				}
				out = append(out, rdf.Triple{Subject: subject, Predicate: pred, Object: o})
			}
		}
	case predicate != "":
		for o, subjects := range g.pos[predicate] {
			if object != nil && o != object {
				continue
			}
			for _, s := range subjects {
				out = append(out, rdf.Triple{Subject: s, Predicate: predicate, Object: o})
			}
		}
	default:
		for _, t := range g.triples {
			if object != nil && t.Object != object {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}

// Objects returns every object of triples with the given subject and
// predicate.
func (g *Graph) Objects(subject rdf.Term, predicate rdf.IRI) []rdf.Term {
	return g.spo[subject][predicate]
}

// Object returns one object of a (subject, predicate) pair, and whether
// any exists.
func (g *Graph) Object(subject rdf.Term, predicate rdf.IRI) (rdf.Term, bool) {
	objects := g.spo[subject][predicate]
	if len(objects) == 0 {
		return nil, false
	}
	return objects[0], true
}

// Subjects returns every subject of triples with the given predicate
// and object.
func (g *Graph) Subjects(predicate rdf.IRI, object rdf.Term) []rdf.Term {
	return g.pos[predicate][object]
}

// Has reports whether the exact triple exists.
func (g *Graph) Has(subject rdf.Term, predicate rdf.IRI, object rdf.Term) bool {
	for _, o := range g.spo[subject][predicate] {
		if o == object {
			return true
		}
	}
	return false
}

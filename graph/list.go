package graph

import (
	"errors"

	"github.com/c360studio/ontolint/rdf"
)

// List materialization errors.
var (
	// ErrTruncatedList is returned when a list node carries rdf:first
	// but no rdf:rest. A node without rdf:first is treated as "not a
	// list node" and degrades to an empty result instead; once
	// rdf:first is present, a missing rdf:rest means corrupted data.
	ErrTruncatedList = errors.New("list node has rdf:first but no rdf:rest")

	// ErrCyclicList is returned when an rdf:rest chain revisits a node.
	ErrCyclicList = errors.New("list contains a cycle")
)

// List materializes the RDF collection rooted at head into an ordered
// slice of member terms, walking rdf:first/rdf:rest to the rdf:nil
// sentinel. The walk is iterative with a visited-node guard, so a
// cyclic chain returns ErrCyclicList rather than looping forever.
//
// A node with no rdf:first edge terminates the walk silently,
// returning the members collected so far; for a head node that means
// an empty slice.
func (g *Graph) List(head rdf.Term) ([]rdf.Term, error) {
	members := []rdf.Term{}
	visited := make(map[rdf.Term]bool)

	node := head
	for {
		if node == rdf.Term(rdf.Nil) {
			return members, nil
		}
		if visited[node] {
			return nil, ErrCyclicList
		}
		visited[node] = true

		first, ok := g.Object(node, rdf.First)
		if !ok {
			return members, nil
		}
		members = append(members, first)

		rest, ok := g.Object(node, rdf.Rest)
		if !ok {
			return nil, ErrTruncatedList
		}
		node = rest
	}
}

// Members returns every rdf:first value reachable from head via zero
// or more rdf:rest edges, the property path rdf:rest*/rdf:first. It is
// a navigation helper, not a strict materialization: malformed chains
// yield whatever members exist, and cycles terminate silently.
func (g *Graph) Members(head rdf.Term) []rdf.Term {
	var members []rdf.Term
	visited := make(map[rdf.Term]bool)

	node := head
	for node != nil && node != rdf.Term(rdf.Nil) && !visited[node] {
		visited[node] = true
		members = append(members, g.Objects(node, rdf.First)...)
		next, ok := g.Object(node, rdf.Rest)
		if !ok {
			break
		}
		node = next
	}
	return members
}

package rdf

// Namespace is the base IRI prefix for the RDF syntax vocabulary.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Core RDF vocabulary terms used by graph traversal.
const (
	// Type is the rdf:type predicate linking a node to its class.
	Type = IRI(Namespace + "type")

	// First is the rdf:first predicate linking a list node to its
	// element value.
	First = IRI(Namespace + "first")

	// Rest is the rdf:rest predicate linking a list node to the next
	// list node.
	Rest = IRI(Namespace + "rest")

	// Nil is the empty-list sentinel terminating every well-formed
	// RDF collection.
	Nil = IRI(Namespace + "nil")
)

// Package rdfs defines the RDF Schema vocabulary terms used by the
// consistency checks.
package rdfs

import "github.com/c360studio/ontolint/rdf"

// Namespace is the base IRI prefix for the RDF Schema vocabulary.
const Namespace = "http://www.w3.org/2000/01/rdf-schema#"

const (
	// Datatype is the class of datatypes.
	Datatype = rdf.IRI(Namespace + "Datatype")

	// Comment is the human-readable description property.
	Comment = rdf.IRI(Namespace + "comment")

	// Label is the human-readable name property.
	Label = rdf.IRI(Namespace + "label")
)

// Package owl defines the OWL vocabulary terms used by the
// consistency checks.
package owl

import "github.com/c360studio/ontolint/rdf"

// Namespace is the base IRI prefix for the OWL vocabulary.
const Namespace = "http://www.w3.org/2002/07/owl#"

const (
	// OneOf links a datatype to the list of its enumerated values.
	OneOf = rdf.IRI(Namespace + "oneOf")

	// Ontology is the class of OWL ontology documents.
	Ontology = rdf.IRI(Namespace + "Ontology")

	// DatatypeProperty is the class of data properties.
	DatatypeProperty = rdf.IRI(Namespace + "DatatypeProperty")
)

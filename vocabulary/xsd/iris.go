// Package xsd defines the XML Schema datatype IRIs assigned to parsed
// literals.
package xsd

import "github.com/c360studio/ontolint/rdf"

// Namespace is the base IRI prefix for XML Schema datatypes.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

const (
	String  = rdf.IRI(Namespace + "string")
	Boolean = rdf.IRI(Namespace + "boolean")
	Integer = rdf.IRI(Namespace + "integer")
	Decimal = rdf.IRI(Namespace + "decimal")
	Double  = rdf.IRI(Namespace + "double")
)

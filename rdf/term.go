// Package rdf defines the term and triple model shared by the parser,
// the triple store, and the consistency checks.
package rdf

import (
	"fmt"
	"strings"
)

// TermKind discriminates the three RDF term variants.
type TermKind int

const (
	// KindIRI is a globally-scoped identifier.
	KindIRI TermKind = iota

	// KindBlankNode is a locally-scoped anonymous identifier.
	KindBlankNode

	// KindLiteral is a typed or language-tagged scalar value.
	KindLiteral
)

// Term is a node in an RDF graph: an IRI, a blank node, or a literal.
// All implementations are comparable value types, so terms can be used
// directly as map keys and compared with ==.
type Term interface {
	Kind() TermKind

	// String returns the N-Triples form of the term.
	String() string
}

// IRI is a named node identified by its full IRI string.
type IRI string

// Kind returns KindIRI.
func (i IRI) Kind() TermKind { return KindIRI }

func (i IRI) String() string { return "<" + string(i) + ">" }

// BlankNode is an anonymous node. The value is the label without the
// "_:" prefix.
type BlankNode string

// Kind returns KindBlankNode.
func (b BlankNode) Kind() TermKind { return KindBlankNode }

func (b BlankNode) String() string { return "_:" + string(b) }

// Literal is a scalar value with an optional datatype or language tag.
// A literal carries at most one of Datatype and Language; a plain string
// literal carries neither.
type Literal struct {
	Value    string
	Datatype IRI
	Language string
}

// Kind returns KindLiteral.
func (l Literal) Kind() TermKind { return KindLiteral }

func (l Literal) String() string {
	quoted := `"` + escapeLiteral(l.Value) + `"`
	switch {
	case l.Language != "":
		return quoted + "@" + l.Language
	case l.Datatype != "":
		return quoted + "^^" + l.Datatype.String()
	default:
		return quoted
	}
}

// String returns a plain string literal.
func String(value string) Literal {
	return Literal{Value: value}
}

// Typed returns a literal with an explicit datatype IRI.
func Typed(value string, datatype IRI) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// Triple is a single (subject, predicate, object) statement. Subjects
// are IRIs or blank nodes, predicates are always IRIs, and objects may
// be any term.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// escapeLiteral escapes special characters for N-Triples serialization.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

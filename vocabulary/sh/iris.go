// Package sh defines the SHACL vocabulary terms used by the
// consistency checks and the validation-report reader.
package sh

import "github.com/c360studio/ontolint/rdf"

// Namespace is the base IRI prefix for the SHACL vocabulary.
const Namespace = "http://www.w3.org/ns/shacl#"

// Shape-definition predicates.
const (
	// Property links a node shape to one of its property shapes.
	Property = rdf.IRI(Namespace + "property")

	// Path is the property path a property shape constrains.
	Path = rdf.IRI(Namespace + "path")

	// Datatype is the datatype constraint of a property shape.
	// "A shape has at most one value for sh:datatype."
	// https://www.w3.org/TR/shacl/#DatatypeConstraintComponent
	Datatype = rdf.IRI(Namespace + "datatype")

	// Or links a shape to a list of alternative constraint shapes.
	Or = rdf.IRI(Namespace + "or")

	// In links a shape to the list of its permitted values.
	In = rdf.IRI(Namespace + "in")
)

// Validation-report classes and predicates.
const (
	// ValidationReport is the class of SHACL validation reports.
	ValidationReport = rdf.IRI(Namespace + "ValidationReport")

	// ValidationResult is the class of individual validation results.
	ValidationResult = rdf.IRI(Namespace + "ValidationResult")

	// Conforms is the boolean conformance flag on a report.
	Conforms = rdf.IRI(Namespace + "conforms")

	// Result links a report to one of its validation results.
	Result = rdf.IRI(Namespace + "result")

	// FocusNode is the node a validation result is about.
	FocusNode = rdf.IRI(Namespace + "focusNode")

	// ResultPath is the property path a validation result is about.
	ResultPath = rdf.IRI(Namespace + "resultPath")

	// ResultSeverity is the severity of a validation result.
	ResultSeverity = rdf.IRI(Namespace + "resultSeverity")
)

// Severity levels.
const (
	// Info is the informational severity.
	Info = rdf.IRI(Namespace + "Info")

	// Warning is the warning severity.
	Warning = rdf.IRI(Namespace + "Warning")

	// Violation is the error severity.
	Violation = rdf.IRI(Namespace + "Violation")
)

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/report"
)

const failingReport = `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix kb: <http://example.org/kb/> .
@prefix core: <https://ontology.unifiedcyberontology.org/uco/core/> .

[] a sh:ValidationReport ;
    sh:conforms false ;
    sh:result [
        a sh:ValidationResult ;
        sh:focusNode kb:hash-3 ;
        sh:resultPath core:hasFacet ;
        sh:resultSeverity sh:Violation ;
    ] , [
        a sh:ValidationResult ;
        sh:focusNode kb:hash-2 ;
        sh:resultPath core:postalCode ;
        sh:resultSeverity sh:Info ;
    ] .
`

const passingReport = `@prefix sh: <http://www.w3.org/ns/shacl#> .

[] a sh:ValidationReport ;
    sh:conforms true .
`

func parse(t *testing.T, doc string) *report.Report {
	t.Helper()
	g, err := graph.LoadString(doc)
	require.NoError(t, err)
	rep, err := report.Parse(g)
	require.NoError(t, err)
	return rep
}

func TestParseFailingReport(t *testing.T) {
	rep := parse(t, failingReport)

	assert.False(t, rep.Conforms)
	require.Len(t, rep.Entries, 2)

	// Entries are sorted by focus node.
	assert.Equal(t, "http://example.org/kb/hash-2", rep.Entries[0].FocusNode)
	assert.Equal(t, "https://ontology.unifiedcyberontology.org/uco/core/postalCode", rep.Entries[0].ResultPath)
	assert.Equal(t, "http://www.w3.org/ns/shacl#Info", rep.Entries[0].Severity)
	assert.Equal(t, "http://example.org/kb/hash-3", rep.Entries[1].FocusNode)
}

func TestParsePassingReport(t *testing.T) {
	rep := parse(t, passingReport)
	assert.True(t, rep.Conforms)
	assert.Empty(t, rep.Entries)
}

func TestParseNoReportNode(t *testing.T) {
	doc := `@prefix ex: <https://example.org/ns#> .
ex:s ex:p ex:o .
`
	g, err := graph.LoadString(doc)
	require.NoError(t, err)
	_, err = report.Parse(g)
	require.ErrorIs(t, err, report.ErrNoReport)
}

func TestVerifyConformance(t *testing.T) {
	rep := parse(t, passingReport)
	assert.NoError(t, rep.Verify(report.Expectation{Conforms: true}))
	assert.Error(t, rep.Verify(report.Expectation{Conforms: false}))
}

func TestVerifyFocusNodeSeverities(t *testing.T) {
	rep := parse(t, failingReport)

	err := rep.Verify(report.Expectation{
		Conforms: false,
		FocusNodeSeverities: []report.FocusSeverity{
			{FocusNode: "http://example.org/kb/hash-2", Severity: "http://www.w3.org/ns/shacl#Info"},
			{FocusNode: "http://example.org/kb/hash-3", Severity: "http://www.w3.org/ns/shacl#Violation"},
		},
	})
	assert.NoError(t, err)

	// A missing expected pair is a mismatch.
	err = rep.Verify(report.Expectation{
		Conforms: false,
		FocusNodeSeverities: []report.FocusSeverity{
			{FocusNode: "http://example.org/kb/hash-2", Severity: "http://www.w3.org/ns/shacl#Info"},
		},
	})
	assert.Error(t, err)
}

func TestVerifyResultPaths(t *testing.T) {
	rep := parse(t, failingReport)

	err := rep.Verify(report.Expectation{
		Conforms: false,
		ResultPaths: []string{
			"https://ontology.unifiedcyberontology.org/uco/core/hasFacet",
			"https://ontology.unifiedcyberontology.org/uco/core/postalCode",
		},
	})
	assert.NoError(t, err)

	err = rep.Verify(report.Expectation{
		Conforms:    false,
		ResultPaths: []string{"https://ontology.unifiedcyberontology.org/uco/core/hasFacet"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected result path")
}

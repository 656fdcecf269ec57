package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontolint/check"
	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/rdf"
)

func mustLoad(t *testing.T, doc string) *graph.Graph {
	t.Helper()
	g, err := graph.LoadString(doc)
	require.NoError(t, err)
	return g
}

func TestDatatypeTallyConflict(t *testing.T) {
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <https://example.org/ns#> .

ex:PersonShape
    sh:property [ sh:path ex:age ; sh:datatype xsd:integer ] ;
    sh:property [ sh:path ex:age ; sh:datatype xsd:string ] .
`
	c := &check.DatatypeTally{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, []rdf.Term{
		rdf.IRI("https://example.org/ns#PersonShape"),
		rdf.IRI("https://example.org/ns#age"),
	}, v.Terms)
	assert.Contains(t, v.Detail, "2 distinct sh:datatype values")
}

func TestDatatypeTallyRepeatedSameDatatype(t *testing.T) {
	// The same datatype declared twice is one distinct value, not a
	// violation.
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <https://example.org/ns#> .

ex:PersonShape
    sh:property [ sh:path ex:age ; sh:datatype xsd:integer ] ;
    sh:property [ sh:path ex:age ; sh:datatype xsd:integer ] .
`
	c := &check.DatatypeTally{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestDatatypeTallyDistinctPaths(t *testing.T) {
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <https://example.org/ns#> .

ex:PersonShape
    sh:property [ sh:path ex:age ; sh:datatype xsd:integer ] ;
    sh:property [ sh:path ex:name ; sh:datatype xsd:string ] .
`
	c := &check.DatatypeTally{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestDatatypeTallySamePathOnDistinctClasses(t *testing.T) {
	// Two classes constraining the same path differently is allowed;
	// the tally is per (class, path) pair.
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <https://example.org/ns#> .

ex:PersonShape sh:property [ sh:path ex:id ; sh:datatype xsd:integer ] .
ex:DeviceShape sh:property [ sh:path ex:id ; sh:datatype xsd:string ] .
`
	c := &check.DatatypeTally{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontolint/check"
	"github.com/c360studio/ontolint/graph"
	"github.com/c360studio/ontolint/rdf"
)

const alignedVocab = `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <https://example.org/ns#> .

ex:ColorVocab a rdfs:Datatype ;
    owl:oneOf ( "red" "green" "blue" ) .

ex:WidgetShape sh:property [
    sh:path ex:color ;
    sh:or ( [ sh:datatype ex:ColorVocab ; sh:in ( "red" "green" "blue" ) ]
            [ sh:datatype xsd:string ] ) ;
] .
`

const misalignedVocab = `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <https://example.org/ns#> .

ex:ColorVocab a rdfs:Datatype ;
    owl:oneOf ( "red" "green" ) .

ex:WidgetShape sh:property [
    sh:path ex:color ;
    sh:or ( [ sh:datatype ex:ColorVocab ; sh:in ( "red" "blue" ) ] ) ;
] .
`

func TestVocabularyAlignmentMatch(t *testing.T) {
	c := &check.VocabularyAlignment{}
	violations, err := c.Run(mustLoad(t, alignedVocab))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestVocabularyAlignmentMismatch(t *testing.T) {
	c := &check.VocabularyAlignment{}
	violations, err := c.Run(mustLoad(t, misalignedVocab))
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, []rdf.Term{
		rdf.IRI("https://example.org/ns#WidgetShape"),
		rdf.IRI("https://example.org/ns#ColorVocab"),
	}, v.Terms)
	// Both divergent sequences are reported for diagnosis.
	assert.Contains(t, v.Detail, `"blue"`)
	assert.Contains(t, v.Detail, `"green"`)
}

func TestVocabularyAlignmentOrderMatters(t *testing.T) {
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <https://example.org/ns#> .

ex:ColorVocab a rdfs:Datatype ;
    owl:oneOf ( "red" "green" ) .

ex:WidgetShape sh:property [
    sh:path ex:color ;
    sh:or ( [ sh:datatype ex:ColorVocab ; sh:in ( "green" "red" ) ] ) ;
] .
`
	c := &check.VocabularyAlignment{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	assert.Len(t, violations, 1)
}

func TestVocabularyAlignmentSharedListNode(t *testing.T) {
	// When sh:in and owl:oneOf name the same list node there is
	// nothing to compare.
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <https://example.org/ns#> .

ex:SharedList a ex:List .
ex:ColorVocab a rdfs:Datatype ;
    owl:oneOf ex:SharedList .

ex:WidgetShape sh:property [
    sh:path ex:color ;
    sh:or ( [ sh:datatype ex:ColorVocab ; sh:in ex:SharedList ] ) ;
] .
`
	c := &check.VocabularyAlignment{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestVocabularyAlignmentDivergentNamedLists(t *testing.T) {
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <https://example.org/ns#> .

ex:ColorVocab a rdfs:Datatype ;
    owl:oneOf ex:ListA .

ex:WidgetShape sh:property [
    sh:path ex:color ;
    sh:or ( [ sh:datatype ex:ColorVocab ; sh:in ex:ListB ] ) ;
] .
`
	c := &check.VocabularyAlignment{}
	violations, err := c.Run(mustLoad(t, doc))
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Detail, "different named lists")
}

func TestVocabularyAlignmentRelevanceGuard(t *testing.T) {
	// Zero pattern matches means the modeling convention drifted; the
	// check must refuse to pass vacuously.
	doc := `@prefix ex: <https://example.org/ns#> .
ex:s ex:p ex:o .
`
	c := &check.VocabularyAlignment{}
	_, err := c.Run(mustLoad(t, doc))
	require.ErrorIs(t, err, check.ErrNoVocabularyPattern)
}

func TestVocabularyAlignmentCorruptList(t *testing.T) {
	// A list node with rdf:first but no rdf:rest aborts the check.
	doc := `@prefix sh: <http://www.w3.org/ns/shacl#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <https://example.org/ns#> .

ex:Broken rdf:first "red" .
ex:ColorVocab a rdfs:Datatype ;
    owl:oneOf ex:Broken .

ex:WidgetShape sh:property [
    sh:path ex:color ;
    sh:or ( [ sh:datatype ex:ColorVocab ; sh:in ( "red" ) ] ) ;
] .
`
	c := &check.VocabularyAlignment{}
	_, err := c.Run(mustLoad(t, doc))
	require.ErrorIs(t, err, graph.ErrTruncatedList)
}

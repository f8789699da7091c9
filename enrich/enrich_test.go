package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenokit/phenokit/annot"
	"github.com/phenokit/phenokit/enrich"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ontology"
)

const delta = 1e-12

// buildFixture assembles the module-wide test DAG with five genes and
// two OMIM diseases; the Orphanet category stays unpopulated.
func buildFixture(t *testing.T) (*ontology.Ontology, *annot.Index) {
	t.Helper()
	ont, err := ontology.Build(ontology.Source{
		Version: "test",
		Terms: []ontology.TermRecord{
			{ID: 1, Name: "All"},
			{ID: 118, Name: "Phenotypic abnormality", Parents: []ontology.TermID{1}},
			{ID: 924, Name: "Abnormality of the skeletal system", Parents: []ontology.TermID{118}},
			{ID: 707, Name: "Abnormality of the nervous system", Parents: []ontology.TermID{118}},
			{ID: 2650, Name: "Scoliosis", Parents: []ontology.TermID{924}},
			{ID: 1250, Name: "Seizure", Parents: []ontology.TermID{707}},
			{ID: 2197, Name: "Generalized-onset seizure", Parents: []ontology.TermID{1250}},
		},
	})
	require.NoError(t, err, "fixture ontology must build")

	ax, err := annot.NewIndex(ont, annot.Tables{
		Genes: []annot.Entry{
			{ID: 10, Name: "GENE1"}, {ID: 20, Name: "GENE2"}, {ID: 30, Name: "GENE3"},
			{ID: 40, Name: "GENE4"}, {ID: 50, Name: "GENE5"},
		},
		OmimDiseases: []annot.Entry{{ID: 100, Name: "Disease A"}, {ID: 200, Name: "Disease B"}},
		GeneLinks: []annot.Link{
			{Term: 2650, Entry: 10}, {Term: 2650, Entry: 30},
			{Term: 1250, Entry: 20}, {Term: 1250, Entry: 30},
			{Term: 118, Entry: 40}, {Term: 924, Entry: 50},
		},
		OmimLinks: []annot.Link{
			{Term: 2650, Entry: 100}, {Term: 1250, Entry: 100}, {Term: 2197, Entry: 200},
		},
	})
	require.NoError(t, err, "fixture annotations must build")
	return ont, ax
}

// TestNewModel_Validation covers nil inputs and bad categories.
func TestNewModel_Validation(t *testing.T) {
	ont, ax := buildFixture(t)

	_, err := enrich.NewModel(nil, ax, annot.CategoryGene)
	assert.ErrorIs(t, err, enrich.ErrNilIndex)

	_, err = enrich.NewModel(ont, nil, annot.CategoryGene)
	assert.ErrorIs(t, err, enrich.ErrNilIndex)

	_, err = enrich.NewModel(ont, ax, annot.Category(9))
	assert.ErrorIs(t, err, annot.ErrUnknownCategory)
}

// TestEnrichment_GeneRanking pins the full hand-computed result table:
// the gene seen at both observed terms must dominate.
func TestEnrichment_GeneRanking(t *testing.T) {
	ont, ax := buildFixture(t)
	m, err := enrich.NewModel(ont, ax, annot.CategoryGene)
	require.NoError(t, err)

	observed, err := hposet.NewRaw(ont, 2650, 1250)
	require.NoError(t, err)

	results, err := m.Enrichment(observed)
	require.NoError(t, err)
	require.Len(t, results, 3, "GENE1, GENE2 and GENE3 share observed terms")

	// GENE3 hits both observed terms: P(X>=2 | N=5, K=3, n=2) = 3/10.
	assert.Equal(t, "GENE3", results[0].Entry.Name)
	assert.Equal(t, 2, results[0].Count)
	assert.InDelta(t, 0.3, results[0].PValue, delta)
	assert.InDelta(t, (2.0/2.0)/(3.0/5.0), results[0].Fold, delta)
	assert.Equal(t, annot.CategoryGene, results[0].Category)

	// GENE1 and GENE2 tie completely; IDs break the tie.
	assert.Equal(t, "GENE1", results[1].Entry.Name)
	assert.Equal(t, "GENE2", results[2].Entry.Name)
	for _, r := range results[1:] {
		assert.Equal(t, 1, r.Count)
		assert.InDelta(t, 0.9, r.PValue, delta, "P(X>=1 | N=5, K=3, n=2) = 1 - 1/10")
		assert.InDelta(t, (1.0/2.0)/(3.0/5.0), r.Fold, delta)
	}
}

// TestEnrichment_PValueBounds verifies every p-value lands in [0, 1].
func TestEnrichment_PValueBounds(t *testing.T) {
	ont, ax := buildFixture(t)
	m, err := enrich.NewModel(ont, ax, annot.CategoryGene)
	require.NoError(t, err)

	observed, err := hposet.NewRaw(ont, 2650, 1250, 924, 707, 118)
	require.NoError(t, err)

	results, err := m.Enrichment(observed)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.PValue, 0.0, "%s", r.Entry.Name)
		assert.LessOrEqual(t, r.PValue, 1.0, "%s", r.Entry.Name)
		assert.Greater(t, r.Fold, 0.0, "every reported entry was observed at least once")
	}
}

// TestEnrichment_Omim sanity-checks a second category end to end.
func TestEnrichment_Omim(t *testing.T) {
	ont, ax := buildFixture(t)
	m, err := enrich.NewModel(ont, ax, annot.CategoryOmim)
	require.NoError(t, err)

	observed, err := hposet.NewRaw(ont, 2650)
	require.NoError(t, err)

	results, err := m.Enrichment(observed)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Disease A", results[0].Entry.Name)
	assert.InDelta(t, 0.5, results[0].PValue, delta, "P(X>=1 | N=2, K=1, n=1)")
	assert.InDelta(t, 2.0, results[0].Fold, delta)
}

// TestEnrichment_Degenerate covers empty, unannotated and unpopulated
// queries; all yield empty results without error.
func TestEnrichment_Degenerate(t *testing.T) {
	ont, ax := buildFixture(t)

	m, err := enrich.NewModel(ont, ax, annot.CategoryGene)
	require.NoError(t, err)

	empty, err := hposet.Parse(ont, "")
	require.NoError(t, err)
	results, err := m.Enrichment(empty)
	require.NoError(t, err)
	assert.Empty(t, results, "empty observed set")

	results, err = m.Enrichment(nil)
	require.NoError(t, err)
	assert.Empty(t, results, "nil observed set behaves like an empty one")

	unannotated, err := hposet.NewRaw(ont, 2197)
	require.NoError(t, err)
	results, err = m.Enrichment(unannotated)
	require.NoError(t, err)
	assert.Empty(t, results, "no observed term carries gene links")

	orpha, err := enrich.NewModel(ont, ax, annot.CategoryOrpha)
	require.NoError(t, err)
	observed, err := hposet.NewRaw(ont, 2650)
	require.NoError(t, err)
	results, err = orpha.Enrichment(observed)
	require.NoError(t, err)
	assert.Empty(t, results, "unpopulated category")
}

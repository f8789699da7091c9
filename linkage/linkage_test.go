package linkage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenokit/phenokit/annot"
	"github.com/phenokit/phenokit/hposet"
	"github.com/phenokit/phenokit/ic"
	"github.com/phenokit/phenokit/linkage"
	"github.com/phenokit/phenokit/ontology"
	"github.com/phenokit/phenokit/similarity"
)

const delta = 1e-12

// buildFixture assembles the module-wide test DAG with five genes and
// three profile sets whose pairwise lin/funSimAvg distances are
// hand-computable: d(0,1)=1, d(0,2)=d(1,2)=0.25.
func buildFixture(t *testing.T) (*similarity.Sim, []*hposet.Set) {
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
		},
	})
	require.NoError(t, err, "fixture ontology must build")

	ax, err := annot.NewIndex(ont, annot.Tables{
		Genes: []annot.Entry{
			{ID: 10, Name: "GENE1"}, {ID: 20, Name: "GENE2"}, {ID: 30, Name: "GENE3"},
			{ID: 40, Name: "GENE4"}, {ID: 50, Name: "GENE5"},
		},
		GeneLinks: []annot.Link{
			{Term: 2650, Entry: 10}, {Term: 2650, Entry: 30},
			{Term: 1250, Entry: 20}, {Term: 1250, Entry: 30},
			{Term: 118, Entry: 40}, {Term: 924, Entry: 50},
		},
	})
	require.NoError(t, err, "fixture annotations must build")

	sim, err := similarity.New(ont, ic.New(ont, ax), annot.CategoryGene, similarity.Lin)
	require.NoError(t, err)

	mk := func(ids ...ontology.TermID) *hposet.Set {
		s, err := hposet.NewRaw(ont, ids...)
		require.NoError(t, err)
		return s
	}
	return sim, []*hposet.Set{mk(2650), mk(1250), mk(2650, 1250)}
}

// TestParseMethod round-trips every linkage method name.
func TestParseMethod(t *testing.T) {
	for _, m := range []linkage.Method{linkage.Single, linkage.Complete, linkage.Average, linkage.Union} {
		parsed, err := linkage.ParseMethod(m.String())
		assert.NoError(t, err, "canonical name %q must parse", m)
		assert.Equal(t, m, parsed)
	}

	_, err := linkage.ParseMethod("ward")
	assert.ErrorIs(t, err, linkage.ErrUnknownMethod)
}

// TestCluster_MergeTable pins the full dendrogram per linkage method.
// The first merge always joins set 0 and set 2 at distance 0.25; the
// methods differ in how far set 1 then sits from the merged cluster.
func TestCluster_MergeTable(t *testing.T) {
	sim, sets := buildFixture(t)

	for _, tc := range []struct {
		method linkage.Method
		final  float64
	}{
		{linkage.Single, 0.25},
		{linkage.Complete, 1.0},
		{linkage.Average, 0.625},
		{linkage.Union, 0.25},
	} {
		rows, err := linkage.Cluster(context.Background(), sim, similarity.FunSimAvg, tc.method, sets)
		require.NoError(t, err, "%s must cluster", tc.method)
		require.Len(t, rows, 2, "%s: n-1 merges for n sets", tc.method)

		assert.Equal(t, 0, rows[0].A, "%s: first merge", tc.method)
		assert.Equal(t, 2, rows[0].B, "%s: first merge", tc.method)
		assert.InDelta(t, 0.25, rows[0].Distance, delta, "%s: first merge distance", tc.method)
		assert.Equal(t, 2, rows[0].Size, "%s: first merged size", tc.method)

		assert.Equal(t, 1, rows[1].A, "%s: last merge joins the leftover set", tc.method)
		assert.Equal(t, 3, rows[1].B, "%s: against the cluster born at step 0", tc.method)
		assert.InDelta(t, tc.final, rows[1].Distance, delta, "%s: final merge distance", tc.method)
		assert.Equal(t, 3, rows[1].Size, "%s: everything merged", tc.method)
	}
}

// TestCluster_Degenerate covers trivial inputs and validation errors.
func TestCluster_Degenerate(t *testing.T) {
	sim, sets := buildFixture(t)

	rows, err := linkage.Cluster(context.Background(), sim, similarity.FunSimAvg, linkage.Average, sets[:1])
	assert.NoError(t, err)
	assert.Empty(t, rows, "one set needs no merging")

	rows, err = linkage.Cluster(context.Background(), sim, similarity.FunSimAvg, linkage.Average, nil)
	assert.NoError(t, err)
	assert.Empty(t, rows, "no sets, no rows")

	_, err = linkage.Cluster(context.Background(), nil, similarity.FunSimAvg, linkage.Average, sets)
	assert.ErrorIs(t, err, linkage.ErrNilEngine)

	_, err = linkage.Cluster(context.Background(), sim, similarity.FunSimAvg, linkage.Method(9), sets)
	assert.ErrorIs(t, err, linkage.ErrUnknownMethod)
}

// TestCluster_SizesAccumulate verifies bookkeeping on a larger input:
// indices stay in range and the final cluster holds every set.
func TestCluster_SizesAccumulate(t *testing.T) {
	sim, sets := buildFixture(t)
	sets = append(sets, sets[0].Union(sets[1]), sets[2])

	rows, err := linkage.Cluster(context.Background(), sim, similarity.FunSimAvg, linkage.Average, sets)
	require.NoError(t, err)
	require.Len(t, rows, len(sets)-1)

	for i, r := range rows {
		assert.Less(t, r.A, r.B, "row %d orders its indices", i)
		assert.Less(t, r.B, len(sets)+i, "row %d references only earlier clusters", i)
		assert.GreaterOrEqual(t, r.Distance, 0.0, "row %d", i)
	}
	assert.Equal(t, len(sets), rows[len(rows)-1].Size, "the last merge contains every set")
}

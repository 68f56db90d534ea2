package reporting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbench/umlcmp/internal/model"
	"github.com/modelbench/umlcmp/internal/reconcile"
	"github.com/modelbench/umlcmp/internal/scoring"
)

func fixtureResult(t *testing.T) (*reconcile.Comparison, *scoring.Result, string) {
	t.Helper()

	reg := model.NewRegistry()

	a := model.NewFactSet()
	a.Classes["X"] = struct{}{}
	a.Classes["Y"] = struct{}{}
	a.Relationships[model.Relationship{From: "X", To: "Y", Label: "uses"}] = struct{}{}
	require.NoError(t, reg.Add("A", a))

	b := model.NewFactSet()
	b.Classes["Y"] = struct{}{}
	b.Classes["Z"] = struct{}{}
	b.Relationships[model.Relationship{From: "X", To: "Y", Label: "uses"}] = struct{}{}
	require.NoError(t, reg.Add("B", b))

	cmp := reconcile.Compare(reg)
	res := scoring.Score(reg, cmp, scoring.DefaultWeights())
	best, err := res.Best()
	require.NoError(t, err)
	return cmp, res, best
}

func TestBuild_SortedRowsAndOrderedMetrics(t *testing.T) {
	cmp, res, best := fixtureResult(t)
	report := Build(cmp, res, best)

	require.Len(t, report.Classes, 3)
	assert.Equal(t, "X", report.Classes[0].Class)
	assert.Equal(t, "Y", report.Classes[1].Class)
	assert.Equal(t, "Z", report.Classes[2].Class)
	assert.Equal(t, []string{"A", "B"}, report.Classes[1].Models)

	require.Len(t, report.Relationships, 1)
	assert.Equal(t, "uses", report.Relationships[0].Label)
	assert.Equal(t, []string{"A", "B"}, report.Relationships[0].Models)

	require.Len(t, report.Metrics, 2)
	assert.Equal(t, "A", report.Metrics[0].Model)
	assert.Equal(t, "B", report.Metrics[1].Model)

	assert.Equal(t, best, report.BestModel)
	assert.Equal(t, 2, report.Statistics.Count)
}

func TestBuild_Deterministic(t *testing.T) {
	cmp, res, best := fixtureResult(t)

	first := Build(cmp, res, best)
	second := Build(cmp, res, best)
	assert.Equal(t, first, second)
}

func TestMarshalCSV_Sections(t *testing.T) {
	cmp, res, best := fixtureResult(t)
	data, err := MarshalCSV(Build(cmp, res, best))
	require.NoError(t, err)

	text := string(data)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	assert.Equal(t, "Class Comparison", lines[0])
	assert.Equal(t, "Class,Present In Models", lines[1])
	assert.Contains(t, text, "Relationship Comparison")
	assert.Contains(t, text, "From,To,Label,Present In Models")
	assert.Contains(t, text, "Model Metrics")
	assert.Contains(t, text, "Model,Recall Classes,Precision Classes,Recall Relationships,Precision Relationships,Overlap Score,Total Score")
	assert.Equal(t, "Best Model,"+best, lines[len(lines)-1])

	// Presence lists with a comma are quoted by the CSV writer.
	assert.Contains(t, text, `Y,"A, B"`)
}

func TestMarshalCSV_ThreeDecimalMetrics(t *testing.T) {
	cmp, res, best := fixtureResult(t)
	data, err := MarshalCSV(Build(cmp, res, best))
	require.NoError(t, err)

	// recall_classes for A is 2/3 → 0.667 at 3 decimal places.
	assert.Contains(t, string(data), "A,0.667,")
}

func TestMarshalCSV_DeterministicAcrossRuns(t *testing.T) {
	cmp, res, best := fixtureResult(t)

	first, err := MarshalCSV(Build(cmp, res, best))
	require.NoError(t, err)
	second, err := MarshalCSV(Build(cmp, res, best))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteCSV(t *testing.T) {
	cmp, res, best := fixtureResult(t)
	path := filepath.Join(t.TempDir(), "results.csv")

	require.NoError(t, WriteCSV(Build(cmp, res, best), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Best Model,"+best)
}

func TestWriteCSV_BadPath(t *testing.T) {
	cmp, res, best := fixtureResult(t)
	err := WriteCSV(Build(cmp, res, best), filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	assert.Error(t, err)
}

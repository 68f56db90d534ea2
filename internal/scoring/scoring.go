// Package scoring turns a reconciled comparison into per-model
// recall/precision/overlap metrics and a weighted total score, and picks
// the best model with a deterministic first-wins tie-break.
package scoring

import (
	"fmt"
	"math"

	"github.com/modelbench/umlcmp/internal/model"
	"github.com/modelbench/umlcmp/internal/reconcile"
)

// Weights are the blend factors for the total score. They must sum to 1.0.
// The defaults reproduce the original tool's constants; a project config
// may override them.
type Weights struct {
	RecallClasses          float64 `yaml:"recall_classes" json:"recall_classes"`
	PrecisionClasses       float64 `yaml:"precision_classes" json:"precision_classes"`
	RecallRelationships    float64 `yaml:"recall_relationships" json:"recall_relationships"`
	PrecisionRelationships float64 `yaml:"precision_relationships" json:"precision_relationships"`
	Overlap                float64 `yaml:"overlap" json:"overlap"`
}

// DefaultWeights returns the historical weighting constants.
func DefaultWeights() Weights {
	return Weights{
		RecallClasses:          0.25,
		PrecisionClasses:       0.25,
		RecallRelationships:    0.25,
		PrecisionRelationships: 0.15,
		Overlap:                0.10,
	}
}

const weightSumEpsilon = 1e-9

// Validate checks that every weight is non-negative and that the weights
// sum to 1.0 within a small epsilon.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"recall_classes":          w.RecallClasses,
		"precision_classes":       w.PrecisionClasses,
		"recall_relationships":    w.RecallRelationships,
		"precision_relationships": w.PrecisionRelationships,
		"overlap":                 w.Overlap,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative (%v)", name, v)
		}
	}
	sum := w.RecallClasses + w.PrecisionClasses + w.RecallRelationships + w.PrecisionRelationships + w.Overlap
	if math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// MetricsRecord holds the six per-model metrics, all in [0,1].
type MetricsRecord struct {
	RecallClasses          float64 `json:"recall_classes"`
	PrecisionClasses       float64 `json:"precision_classes"`
	RecallRelationships    float64 `json:"recall_relationships"`
	PrecisionRelationships float64 `json:"precision_relationships"`
	OverlapScore           float64 `json:"overlap_score"`
	TotalScore             float64 `json:"total_score"`
}

// NoModelsError is returned by Best when the result covers zero models.
type NoModelsError struct{}

func (*NoModelsError) Error() string {
	return "no models to rank"
}

// Result holds the scoring output for every model in a registry.
type Result struct {
	// Order is the registry order the scores were computed under. Best
	// resolves ties against this order.
	Order   []string
	Scores  map[string]float64
	Metrics map[string]MetricsRecord
}

// Score computes a MetricsRecord per model. It is a pure function of the
// registry, the comparison, and the weights: no side effects, and every
// degenerate case (empty sets, empty registry) is a defined zero value
// rather than an error. Division-by-zero guards are explicit branches.
func Score(reg *model.Registry, cmp *reconcile.Comparison, weights Weights) *Result {
	res := &Result{
		Order:   reg.Names(),
		Scores:  make(map[string]float64, reg.Len()),
		Metrics: make(map[string]MetricsRecord, reg.Len()),
	}

	for _, name := range res.Order {
		fs, _ := reg.Get(name)
		rec := scoreModel(fs, cmp, weights)
		res.Metrics[name] = rec
		res.Scores[name] = rec.TotalScore
	}

	return res
}

func scoreModel(fs *model.FactSet, cmp *reconcile.Comparison, weights Weights) MetricsRecord {
	var rec MetricsRecord

	// A fact counts as corroborated only when at least one other model
	// asserts it too, i.e. its presence list has more than one entry.
	classOverlap := 0
	for c := range fs.Classes {
		if len(cmp.ClassPresence[c]) > 1 {
			classOverlap++
		}
	}
	relOverlap := 0
	for r := range fs.Relationships {
		if len(cmp.RelationshipPresence[r]) > 1 {
			relOverlap++
		}
	}

	if len(cmp.AllClasses) > 0 {
		rec.RecallClasses = float64(len(fs.Classes)) / float64(len(cmp.AllClasses))
	}
	if len(fs.Classes) > 0 {
		rec.PrecisionClasses = float64(classOverlap) / float64(len(fs.Classes))
	}
	if len(cmp.AllRelationships) > 0 {
		rec.RecallRelationships = float64(len(fs.Relationships)) / float64(len(cmp.AllRelationships))
	}
	if len(fs.Relationships) > 0 {
		rec.PrecisionRelationships = float64(relOverlap) / float64(len(fs.Relationships))
	}
	if total := len(fs.Classes) + len(fs.Relationships); total > 0 {
		rec.OverlapScore = float64(classOverlap+relOverlap) / float64(total)
	}

	rec.TotalScore = weights.RecallClasses*rec.RecallClasses +
		weights.PrecisionClasses*rec.PrecisionClasses +
		weights.RecallRelationships*rec.RecallRelationships +
		weights.PrecisionRelationships*rec.PrecisionRelationships +
		weights.Overlap*rec.OverlapScore

	return rec
}

// Best returns the model with the maximum total score. Ties resolve to the
// model appearing first in registry order; this is a documented,
// deterministic policy rather than map-iteration luck. An empty result
// yields a NoModelsError.
func (r *Result) Best() (string, error) {
	if len(r.Order) == 0 {
		return "", &NoModelsError{}
	}
	best := r.Order[0]
	for _, name := range r.Order[1:] {
		if r.Scores[name] > r.Scores[best] {
			best = name
		}
	}
	return best, nil
}

// Package reporting assembles the comparison and scoring output into a
// Report and emits it as CSV or JSON. Rows are sorted so CSV output is
// byte-identical across runs even though the unions live in maps.
package reporting

import (
	"sort"

	"github.com/modelbench/umlcmp/internal/model"
	"github.com/modelbench/umlcmp/internal/reconcile"
	"github.com/modelbench/umlcmp/internal/scoring"
	"github.com/modelbench/umlcmp/internal/statistics"
)

// ClassRow is one class-level comparison entry.
type ClassRow struct {
	Class  string   `json:"class"`
	Models []string `json:"present_in"`
}

// RelationshipRow is one relationship-level comparison entry.
type RelationshipRow struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Label  string   `json:"label"`
	Models []string `json:"present_in"`
}

// MetricsRow is the six-metric record for one model, in registry order.
type MetricsRow struct {
	Model string `json:"model"`
	scoring.MetricsRecord
}

// Report is the full comparison output: fact-level presence listings,
// per-model metrics, score statistics, and the best model.
type Report struct {
	Classes       []ClassRow         `json:"classes"`
	Relationships []RelationshipRow  `json:"relationships"`
	Metrics       []MetricsRow       `json:"models"`
	Statistics    statistics.Summary `json:"score_statistics"`
	BestModel     string             `json:"best_model"`
}

// Build assembles a Report from the reconciled comparison and the scoring
// result. bestModel comes from scoring.Result.Best; passing it in keeps
// Build total (it never fails).
func Build(cmp *reconcile.Comparison, res *scoring.Result, bestModel string) *Report {
	r := &Report{BestModel: bestModel}

	classes := make([]string, 0, len(cmp.AllClasses))
	for c := range cmp.AllClasses {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	for _, c := range classes {
		r.Classes = append(r.Classes, ClassRow{Class: c, Models: cmp.ClassPresence[c]})
	}

	rels := make([]model.Relationship, 0, len(cmp.AllRelationships))
	for rel := range cmp.AllRelationships {
		rels = append(rels, rel)
	}
	sort.Slice(rels, func(i, j int) bool {
		if rels[i].From != rels[j].From {
			return rels[i].From < rels[j].From
		}
		if rels[i].To != rels[j].To {
			return rels[i].To < rels[j].To
		}
		return rels[i].Label < rels[j].Label
	})
	for _, rel := range rels {
		r.Relationships = append(r.Relationships, RelationshipRow{
			From:   rel.From,
			To:     rel.To,
			Label:  rel.Label,
			Models: cmp.RelationshipPresence[rel],
		})
	}

	scores := make([]float64, 0, len(res.Order))
	for _, name := range res.Order {
		r.Metrics = append(r.Metrics, MetricsRow{Model: name, MetricsRecord: res.Metrics[name]})
		scores = append(scores, res.Scores[name])
	}
	r.Statistics = statistics.Summarize(scores)

	return r
}

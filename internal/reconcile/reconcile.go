// Package reconcile computes the cross-model view of a registry: the union
// of all asserted facts and, for each fact, which models assert it.
package reconcile

import (
	"log/slog"

	"github.com/modelbench/umlcmp/internal/model"
)

// Comparison is the reconciled view over a registry. It is an immutable
// snapshot: built once per run, never mutated afterwards.
type Comparison struct {
	// AllClasses is the union of every model's class set.
	AllClasses map[string]struct{}
	// AllRelationships is the union of every model's relationship set.
	AllRelationships map[model.Relationship]struct{}
	// ClassPresence maps each class in AllClasses to the models asserting
	// it, in registry order. Every entry has at least one model.
	ClassPresence map[string][]string
	// RelationshipPresence is the same index for relationship triples.
	RelationshipPresence map[model.Relationship][]string
}

// Compare builds the Comparison for a registry. An empty registry yields
// empty unions and empty presence maps; that is a valid terminal state,
// not an error. The result is deterministic for a fixed registry order.
func Compare(reg *model.Registry) *Comparison {
	cmp := &Comparison{
		AllClasses:           make(map[string]struct{}),
		AllRelationships:     make(map[model.Relationship]struct{}),
		ClassPresence:        make(map[string][]string),
		RelationshipPresence: make(map[model.Relationship][]string),
	}

	names := reg.Names()
	for _, name := range names {
		fs, _ := reg.Get(name)
		for c := range fs.Classes {
			cmp.AllClasses[c] = struct{}{}
		}
		for r := range fs.Relationships {
			cmp.AllRelationships[r] = struct{}{}
		}
	}

	// Presence lists follow registry order, not union iteration order.
	for c := range cmp.AllClasses {
		for _, name := range names {
			fs, _ := reg.Get(name)
			if fs.HasClass(c) {
				cmp.ClassPresence[c] = append(cmp.ClassPresence[c], name)
			}
		}
	}
	for r := range cmp.AllRelationships {
		for _, name := range names {
			fs, _ := reg.Get(name)
			if fs.HasRelationship(r) {
				cmp.RelationshipPresence[r] = append(cmp.RelationshipPresence[r], name)
			}
		}
	}

	slog.Debug("reconciled registry",
		"models", len(names),
		"classes", len(cmp.AllClasses),
		"relationships", len(cmp.AllRelationships))

	return cmp
}

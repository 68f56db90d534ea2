package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbench/umlcmp/internal/model"
)

func factSet(t *testing.T, classes []string, rels []model.Relationship) *model.FactSet {
	t.Helper()
	fs := model.NewFactSet()
	for _, c := range classes {
		fs.Classes[c] = struct{}{}
	}
	for _, r := range rels {
		fs.Relationships[r] = struct{}{}
	}
	return fs
}

func registry(t *testing.T, entries ...func(*model.Registry)) *model.Registry {
	t.Helper()
	reg := model.NewRegistry()
	for _, add := range entries {
		add(reg)
	}
	return reg
}

func with(t *testing.T, name string, classes []string, rels []model.Relationship) func(*model.Registry) {
	return func(reg *model.Registry) {
		require.NoError(t, reg.Add(name, factSet(t, classes, rels)))
	}
}

func TestCompare_TwoModelClassOverlap(t *testing.T) {
	reg := registry(t,
		with(t, "A", []string{"X", "Y"}, nil),
		with(t, "B", []string{"Y", "Z"}, nil),
	)

	cmp := Compare(reg)

	assert.Len(t, cmp.AllClasses, 3)
	assert.Contains(t, cmp.AllClasses, "X")
	assert.Contains(t, cmp.AllClasses, "Y")
	assert.Contains(t, cmp.AllClasses, "Z")

	assert.Equal(t, []string{"A"}, cmp.ClassPresence["X"])
	assert.Equal(t, []string{"A", "B"}, cmp.ClassPresence["Y"])
	assert.Equal(t, []string{"B"}, cmp.ClassPresence["Z"])

	assert.Empty(t, cmp.AllRelationships)
	assert.Empty(t, cmp.RelationshipPresence)
}

func TestCompare_RelationshipPresence(t *testing.T) {
	shared := model.Relationship{From: "Customer", To: "Order", Label: "places"}
	only2 := model.Relationship{From: "Order", To: "Item", Label: "contains"}

	reg := registry(t,
		with(t, "m1", []string{"Customer", "Order"}, []model.Relationship{shared}),
		with(t, "m2", []string{"Order", "Item"}, []model.Relationship{shared, only2}),
	)

	cmp := Compare(reg)

	assert.Len(t, cmp.AllRelationships, 2)
	assert.Equal(t, []string{"m1", "m2"}, cmp.RelationshipPresence[shared])
	assert.Equal(t, []string{"m2"}, cmp.RelationshipPresence[only2])
}

func TestCompare_EmptyRegistry(t *testing.T) {
	cmp := Compare(model.NewRegistry())

	assert.Empty(t, cmp.AllClasses)
	assert.Empty(t, cmp.AllRelationships)
	assert.Empty(t, cmp.ClassPresence)
	assert.Empty(t, cmp.RelationshipPresence)
}

// Every fact in a union must be claimed by at least one model, and every
// presence list must follow registry order.
func TestCompare_PresenceCompleteness(t *testing.T) {
	reg := registry(t,
		with(t, "alpha", []string{"A", "B", "C"}, []model.Relationship{{From: "A", To: "B", Label: "x"}}),
		with(t, "beta", []string{"B", "D"}, []model.Relationship{{From: "A", To: "B", Label: "x"}, {From: "B", To: "D", Label: "y"}}),
		with(t, "gamma", []string{"C"}, nil),
	)

	cmp := Compare(reg)

	for c, present := range cmp.ClassPresence {
		require.NotEmpty(t, present, "class %q has an empty presence list", c)
	}
	for r, present := range cmp.RelationshipPresence {
		require.NotEmpty(t, present, "relationship %v has an empty presence list", r)
	}
	for c := range cmp.AllClasses {
		assert.Contains(t, cmp.ClassPresence, c)
	}
	for r := range cmp.AllRelationships {
		assert.Contains(t, cmp.RelationshipPresence, r)
	}

	// "B" is asserted by alpha and beta, in that order.
	assert.Equal(t, []string{"alpha", "beta"}, cmp.ClassPresence["B"])
}

func TestCompare_Idempotent(t *testing.T) {
	reg := registry(t,
		with(t, "A", []string{"X", "Y"}, []model.Relationship{{From: "X", To: "Y", Label: "l"}}),
		with(t, "B", []string{"Y"}, nil),
	)

	first := Compare(reg)
	second := Compare(reg)

	assert.Equal(t, first.AllClasses, second.AllClasses)
	assert.Equal(t, first.AllRelationships, second.AllRelationships)
	assert.Equal(t, first.ClassPresence, second.ClassPresence)
	assert.Equal(t, first.RelationshipPresence, second.RelationshipPresence)
}

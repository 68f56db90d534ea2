// Package model defines the domain types shared across umlcmp: the
// Relationship triple, the per-source FactSet, and the ordered Registry
// that the reconciler consumes.
package model

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Relationship is a directed, labeled edge between two class names.
// It is a comparable value type: two relationships are the same fact
// exactly when all three fields match.
type Relationship struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

func (r Relationship) String() string {
	return fmt.Sprintf("%s -[%s]-> %s", r.From, r.Label, r.To)
}

// FactSet is the collection of atomic facts asserted by one model source:
// a set of class names and a set of relationship triples. A FactSet is
// built once during loading and is read-only afterwards.
type FactSet struct {
	Classes       map[string]struct{}
	Relationships map[Relationship]struct{}
}

// NewFactSet returns an empty FactSet with both sets allocated.
func NewFactSet() *FactSet {
	return &FactSet{
		Classes:       make(map[string]struct{}),
		Relationships: make(map[Relationship]struct{}),
	}
}

// HasClass reports whether the fact set asserts the given class name.
func (fs *FactSet) HasClass(name string) bool {
	_, ok := fs.Classes[name]
	return ok
}

// HasRelationship reports whether the fact set asserts the given triple.
func (fs *FactSet) HasRelationship(rel Relationship) bool {
	_, ok := fs.Relationships[rel]
	return ok
}

// MalformedFactError reports a relationship entry that lacks a required
// field. It names the model, the entry index, and the missing field so the
// user can fix the input file directly.
type MalformedFactError struct {
	Model string
	Index int
	Field string
}

func (e *MalformedFactError) Error() string {
	return fmt.Sprintf("model %s: relationships[%d]: missing required field %q", e.Model, e.Index, e.Field)
}

// rawRelationship mirrors one entry of the "relationships" array. Pointer
// fields distinguish a missing key from an empty string.
type rawRelationship struct {
	From  *string `mapstructure:"from"`
	To    *string `mapstructure:"to"`
	Label *string `mapstructure:"label"`
}

// FactSetFromDocument builds a FactSet from a decoded model JSON document.
// Missing "classes" or "relationships" keys default to empty sets.
// Duplicate entries collapse via set semantics. A relationship entry missing
// a from/to/label key yields a MalformedFactError and aborts construction;
// this is the only validation performed here. An empty string is a present
// value and loads as an ordinary fact.
func FactSetFromDocument(modelName string, doc map[string]any) (*FactSet, error) {
	fs := NewFactSet()

	if rawClasses, ok := doc["classes"]; ok {
		var classes []string
		if err := mapstructure.Decode(rawClasses, &classes); err != nil {
			return nil, fmt.Errorf("model %s: decoding classes: %w", modelName, err)
		}
		for _, c := range classes {
			fs.Classes[c] = struct{}{}
		}
	}

	if rawRels, ok := doc["relationships"]; ok {
		var rels []rawRelationship
		if err := mapstructure.Decode(rawRels, &rels); err != nil {
			return nil, fmt.Errorf("model %s: decoding relationships: %w", modelName, err)
		}
		for i, raw := range rels {
			rel, err := raw.toRelationship(modelName, i)
			if err != nil {
				return nil, err
			}
			fs.Relationships[rel] = struct{}{}
		}
	}

	return fs, nil
}

func (raw rawRelationship) toRelationship(modelName string, index int) (Relationship, error) {
	if raw.From == nil {
		return Relationship{}, &MalformedFactError{Model: modelName, Index: index, Field: "from"}
	}
	if raw.To == nil {
		return Relationship{}, &MalformedFactError{Model: modelName, Index: index, Field: "to"}
	}
	if raw.Label == nil {
		return Relationship{}, &MalformedFactError{Model: modelName, Index: index, Field: "label"}
	}
	return Relationship{From: *raw.From, To: *raw.To, Label: *raw.Label}, nil
}

// Package loader reads model description files into a Registry. Loads fan
// out concurrently, but the Registry is only assembled once every load has
// finished: downstream reconciliation always observes a fully-populated
// registry, never a stream. Any single failure aborts the whole run — no
// partial comparison across a subset of models.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/modelbench/umlcmp/internal/model"
)

// Source names one model input: the model's display name and the path of
// its JSON description file.
type Source struct {
	Name string
	Path string
}

// MissingInputError reports a model file that could not be located or read.
// It is surfaced before any comparison starts.
type MissingInputError struct {
	Model string
	Path  string
	Err   error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("model %s: input file not found: %s", e.Model, e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// LoadRegistry loads every source and returns a Registry in source order.
// The first failure cancels the remaining loads and is returned as-is
// (MissingInputError or model.MalformedFactError beneath any wrapping).
func LoadRegistry(ctx context.Context, sources []Source) (*model.Registry, error) {
	seen := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		if _, dup := seen[src.Name]; dup {
			return nil, fmt.Errorf("duplicate model name %q", src.Name)
		}
		seen[src.Name] = struct{}{}
	}

	results := make([]*model.FactSet, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fs, err := loadOne(src)
			if err != nil {
				return err
			}
			results[i] = fs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Registry order is source order, regardless of which goroutine
	// finished first.
	reg := model.NewRegistry()
	for i, src := range sources {
		if err := reg.Add(src.Name, results[i]); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func loadOne(src Source) (*model.FactSet, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, &MissingInputError{Model: src.Name, Path: src.Path, Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("model %s: parsing %s: %w", src.Name, src.Path, err)
	}

	fs, err := model.FactSetFromDocument(src.Name, doc)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded model",
		"model", src.Name,
		"path", src.Path,
		"classes", len(fs.Classes),
		"relationships", len(fs.Relationships))

	return fs, nil
}

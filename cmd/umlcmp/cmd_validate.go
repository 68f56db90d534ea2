package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelbench/umlcmp/internal/model"
	"github.com/modelbench/umlcmp/internal/validation"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <model.json> [model.json ...]",
		Short: "Validate model description files without comparing them",
		Long: `Validate one or more model JSON files against the model schema and the
loader's relationship rules, without running a comparison.

Prints a per-file result. The exit code is 1 when any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: validateCommandE,
	}
	return cmd
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		errs := validateModelFile(path)
		if len(errs) == 0 {
			fmt.Fprintf(out, "✅ %s\n", path) //nolint:errcheck
			continue
		}
		failed++
		fmt.Fprintf(out, "❌ %s\n", path) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(out, "   %s\n", e) //nolint:errcheck
		}
	}

	if failed > 0 {
		return &ValidationFailureError{
			Message: fmt.Sprintf("%d of %d model file(s) failed validation", failed, len(args)),
		}
	}
	return nil
}

// validateModelFile runs the schema check and then the loader's own fact
// rules, so `umlcmp validate` flags everything `umlcmp compare` would
// reject.
func validateModelFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("cannot read file: %v", err)}
	}

	if errs := validation.ValidateModelBytes(data); len(errs) > 0 {
		return errs
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if _, err := model.FactSetFromDocument(name, doc); err != nil {
		return []string{err.Error()}
	}
	return nil
}

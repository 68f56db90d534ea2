package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelbench/umlcmp/internal/loader"
	"github.com/modelbench/umlcmp/internal/projectconfig"
	"github.com/modelbench/umlcmp/internal/reconcile"
	"github.com/modelbench/umlcmp/internal/reporting"
	"github.com/modelbench/umlcmp/internal/scoring"
)

var (
	compareOutputFormat string
	compareCSVPath      string
)

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [Name=model.json ...]",
		Short: "Compare model description files and rank the sources",
		Long: `Compare UML model descriptions from multiple sources.

With no arguments, the sources come from the models list in .umlcmp.yaml
(or the built-in defaults). Arguments override the config: each is either
a Name=file.json pair or a bare file path, in which case the model name is
the file name without its extension. Argument order is the registry order
used for presence listings and the best-model tie-break.

All sources are loaded before any comparison starts; a missing or
malformed file aborts the run and no report is produced.`,
		Args: cobra.ArbitraryArgs,
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareOutputFormat, "format", "f", "table", "Console output format: table or json")
	cmd.Flags().StringVarP(&compareCSVPath, "output", "o", "", "CSV output path (default from .umlcmp.yaml)")

	return cmd
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	if compareOutputFormat != "table" && compareOutputFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", compareOutputFormat)
	}

	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	weights := cfg.EffectiveWeights()
	if err := weights.Validate(); err != nil {
		return fmt.Errorf("invalid weights in %s: %w", projectconfig.ConfigFileName, err)
	}

	sources, err := resolveSources(cfg, args)
	if err != nil {
		return err
	}

	registry, err := loader.LoadRegistry(cmd.Context(), sources)
	if err != nil {
		return err
	}

	comparison := reconcile.Compare(registry)
	result := scoring.Score(registry, comparison, weights)
	best, err := result.Best()
	if err != nil {
		return fmt.Errorf("ranking models: %w", err)
	}

	report := reporting.Build(comparison, result, best)

	csvPath := compareCSVPath
	if csvPath == "" {
		csvPath = cfg.Output.CSV
	}
	if err := reporting.WriteCSV(report, csvPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if compareOutputFormat == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(out, string(data)) //nolint:errcheck
	} else {
		printReport(out, report)
	}

	fmt.Fprintf(out, "Results saved to %s\n", csvPath) //nolint:errcheck
	return nil
}

// resolveSources turns CLI arguments (or, absent any, the config's models
// list) into loader sources. Order is preserved: it becomes the registry
// order.
func resolveSources(cfg *projectconfig.ProjectConfig, args []string) ([]loader.Source, error) {
	if len(args) == 0 {
		sources := make([]loader.Source, 0, len(cfg.Models))
		for _, m := range cfg.Models {
			sources = append(sources, loader.Source{Name: m.Name, Path: m.File})
		}
		return sources, nil
	}

	sources := make([]loader.Source, 0, len(args))
	for _, arg := range args {
		if name, path, found := strings.Cut(arg, "="); found {
			name = strings.TrimSpace(name)
			path = strings.TrimSpace(path)
			if name == "" || path == "" {
				return nil, fmt.Errorf("argument %q: expected Name=file.json", arg)
			}
			sources = append(sources, loader.Source{Name: name, Path: path})
			continue
		}
		base := filepath.Base(arg)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		sources = append(sources, loader.Source{Name: name, Path: arg})
	}
	return sources, nil
}

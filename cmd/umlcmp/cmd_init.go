package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modelbench/umlcmp/internal/projectconfig"
	"github.com/modelbench/umlcmp/internal/wizard"
)

// sampleModelJSON is written for each configured model file that does not
// exist yet, so a freshly scaffolded project can run compare immediately.
const sampleModelJSON = `{
  "classes": ["Customer", "Order", "Product"],
  "relationships": [
    {"from": "Customer", "to": "Order", "label": "places"},
    {"from": "Order", "to": "Product", "label": "contains"}
  ]
}
`

func newInitCommand() *cobra.Command {
	var (
		interactive bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a comparison project",
		Long: `Initialize a comparison project: writes a .umlcmp.yaml listing the model
sources and creates a sample JSON file for each source that does not
exist yet.

Use --interactive to run a guided wizard that collects the model names,
file paths, and output location.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive, force)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run guided project setup wizard")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive, force bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, projectconfig.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	spec := &wizard.ProjectSpec{
		Models:  projectconfig.DefaultModels(),
		CSVPath: projectconfig.DefaultCSVPath,
	}
	if interactive {
		var err error
		spec, err = wizard.RunProjectWizard(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	content, err := wizard.GenerateConfigYAML(spec)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfgPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", cfgPath) //nolint:errcheck

	for _, m := range spec.Models {
		path := m.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := os.Stat(path); err == nil {
			continue // never clobber an existing model file
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if parent := filepath.Dir(path); parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", parent, err)
			}
		}
		if err := os.WriteFile(path, []byte(sampleModelJSON), 0o644); err != nil {
			return fmt.Errorf("failed to write sample model %s: %w", path, err)
		}
		fmt.Fprintf(out, "Created %s (sample model for %s)\n", path, m.Name) //nolint:errcheck
	}

	fmt.Fprintln(out, "\nRun 'umlcmp compare' to produce a comparison report.") //nolint:errcheck
	return nil
}

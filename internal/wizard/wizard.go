// Package wizard implements the interactive project setup used by
// `umlcmp init --interactive`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/modelbench/umlcmp/internal/projectconfig"
)

// ProjectSpec holds all fields collected during the interactive wizard.
type ProjectSpec struct {
	Models  []projectconfig.ModelEntry
	CSVPath string
}

// RunProjectWizard runs an interactive huh form to collect the model
// sources and output path for a new .umlcmp.yaml.
func RunProjectWizard(in io.Reader, out io.Writer) (*ProjectSpec, error) {
	var (
		modelsRaw string
		csvPath   = projectconfig.DefaultCSVPath
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model sources").
				Description("Comma-separated Name=file.json pairs, in ranking tie-break order").
				Placeholder("Claude=claude.json, Gemini=gemini.json, Groq=groq.json").
				Value(&modelsRaw).
				Validate(func(s string) error {
					_, err := parseModelEntries(s)
					return err
				}),
			huh.NewInput().
				Title("CSV output path").
				Description("Where the comparison results file is written").
				Value(&csvPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("output path is required")
					}
					return nil
				}),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	entries, err := parseModelEntries(modelsRaw)
	if err != nil {
		return nil, err
	}

	return &ProjectSpec{
		Models:  entries,
		CSVPath: strings.TrimSpace(csvPath),
	}, nil
}

// GenerateConfigYAML renders a .umlcmp.yaml from the given spec.
func GenerateConfigYAML(spec *ProjectSpec) (string, error) {
	cfg := projectconfig.ProjectConfig{
		Models: spec.Models,
		Output: projectconfig.OutputConfig{CSV: spec.CSVPath},
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(data), nil
}

// parseModelEntries parses "Name=file.json, Name2=other.json" input.
func parseModelEntries(s string) ([]projectconfig.ModelEntry, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("at least one model is required")
	}
	var entries []projectconfig.ModelEntry
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, file, found := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		file = strings.TrimSpace(file)
		if !found || name == "" || file == "" {
			return nil, fmt.Errorf("entry %q: expected Name=file.json", part)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate model name %q", name)
		}
		seen[name] = struct{}{}
		entries = append(entries, projectconfig.ModelEntry{Name: name, File: file})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("at least one model is required")
	}
	return entries, nil
}

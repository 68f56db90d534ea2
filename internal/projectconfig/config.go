// Package projectconfig provides the ProjectConfig struct and loader for
// .umlcmp.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modelbench/umlcmp/internal/scoring"
)

// ConfigFileName is the project configuration file umlcmp looks for,
// walking up from the working directory.
const ConfigFileName = ".umlcmp.yaml"

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultCSVPath = "uml_comparison_results.csv"
)

// DefaultModels returns the model sources assumed when no config file
// names any. The names and files match the original comparison setup.
func DefaultModels() []ModelEntry {
	return []ModelEntry{
		{Name: "Claude", File: "claude.json"},
		{Name: "Gemini", File: "gemini.json"},
		{Name: "Groq", File: "groq.json"},
	}
}

// ModelEntry names one model source: a display name and the path of its
// JSON description file. Entry order is the registry order.
type ModelEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	CSV string `yaml:"csv,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .umlcmp.yaml.
type ProjectConfig struct {
	Models  []ModelEntry     `yaml:"models,omitempty"`
	Output  OutputConfig     `yaml:"output,omitempty"`
	Weights *scoring.Weights `yaml:"weights,omitempty"`
}

// New returns a ProjectConfig with all defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Models: DefaultModels(),
		Output: OutputConfig{CSV: DefaultCSVPath},
	}
}

// EffectiveWeights returns the configured weights, or the historical
// defaults when the config file does not override them.
func (c *ProjectConfig) EffectiveWeights() scoring.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return scoring.DefaultWeights()
}

// Load finds .umlcmp.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .umlcmp.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates
// real I/O errors (e.g. permission denied) instead of silently swallowing
// them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if len(src.Models) > 0 {
		dst.Models = src.Models
	}
	if src.Output.CSV != "" {
		dst.Output.CSV = src.Output.CSV
	}
	if src.Weights != nil {
		dst.Weights = src.Weights
	}
}

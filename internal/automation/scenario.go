// Package automation runs scripted and batched simulations: scenario files
// executed step by step, and parameter grids executed concurrently.
package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/experiment"
	"github.com/san-kum/gravsim/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of headless runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step starts from a preset and applies Overrides, a config fragment using
// the same keys as a config file.
type Step struct {
	Preset    string    `yaml:"preset"`
	Ticks     int       `yaml:"ticks"`
	Overrides yaml.Node `yaml:"overrides"`
	SaveAs    string    `yaml:"save_as"`
}

type StepResult struct {
	Step   int
	Name   string
	RunID  string
	Record *experiment.Record
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", s.Name)
	}
	return &s, nil
}

// Config resolves the configuration of one step.
func (st Step) Config() (*config.Config, error) {
	name := st.Preset
	if name == "" {
		name = "default"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	if !st.Overrides.IsZero() {
		if err := st.Overrides.Decode(cfg); err != nil {
			return nil, fmt.Errorf("overrides: %w", err)
		}
	}
	if st.Ticks > 0 {
		cfg.Ticks = st.Ticks
	}
	return cfg, cfg.Validate()
}

// Run executes the steps in order. Steps with SaveAs are written to store
// when one is given. Progress goes to out.
func (s *Scenario) Run(ctx context.Context, registry *experiment.Registry, store *storage.Store, out io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(s.Steps))

	for i, step := range s.Steps {
		label := step.SaveAs
		if label == "" {
			label = step.Preset
		}
		fmt.Fprintf(out, "step %d/%d: %s\n", i+1, len(s.Steps), label)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(registry); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}
		rec, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		res := StepResult{Step: i + 1, Name: label, Record: rec}
		if step.SaveAs != "" && store != nil {
			res.RunID, err = store.Save(step.SaveAs, cfg, rec.Result, rec.Samples)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, res)
	}

	return results, nil
}

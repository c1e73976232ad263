// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sbmgen/sbm"
)

// Variant names accepted in scenario files and --variant flags.
const (
	variantBinary   = "binary"
	variantSigned   = "signed"
	variantWeighted = "weighted"
)

// Output formats.
const (
	formatJSON     = "json"
	formatEdgeList = "edgelist"
)

var errUnknownVariant = errors.New("sbmgen: unknown variant")

// Scenario describes one generation run. Zero-valued numeric fields fall
// back to the variant's canonical preset, so a scenario file only needs to
// name what it overrides.
type Scenario struct {
	Name       string  `yaml:"name"`
	Variant    string  `yaml:"variant"`
	N          int     `yaml:"n"`
	BlockSizes []int   `yaml:"block_sizes"`
	PIn        float64 `yaml:"p_in"`
	POut       float64 `yaml:"p_out"`
	PPosIn     float64 `yaml:"p_pos_in"`
	PNegOut    float64 `yaml:"p_neg_out"`
	PPosOut    float64 `yaml:"p_pos_out"`
	LamIn      float64 `yaml:"lam_in"`
	LamOut     float64 `yaml:"lam_out"`
	Seed       int64   `yaml:"seed"`
	Output     string  `yaml:"output"` // destination path; empty means stdout
	Format     string  `yaml:"format"` // json (default) or edgelist
}

// ScenarioFile is the root of a YAML scenario document.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// loadScenarios reads and decodes a YAML scenario file.
func loadScenarios(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sbmgen: read scenario file: %w", err)
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("sbmgen: parse scenario file: %w", err)
	}

	return &sf, nil
}

// withDefaults fills zero-valued fields from the variant's canonical preset.
// An explicitly set field always wins.
func (s Scenario) withDefaults() (Scenario, error) {
	switch s.Variant {
	case variantBinary:
		def := sbm.DefaultBinaryParams()
		if s.N == 0 {
			s.N = def.N
		}
		if len(s.BlockSizes) == 0 {
			s.BlockSizes = def.BlockSizes
		}
		if s.PIn == 0 {
			s.PIn = def.PIn
		}
		if s.POut == 0 {
			s.POut = def.POut
		}
		if s.Seed == 0 {
			s.Seed = def.Seed
		}
	case variantSigned:
		def := sbm.DefaultSignedParams()
		if s.N == 0 {
			s.N = def.N
		}
		if len(s.BlockSizes) == 0 {
			s.BlockSizes = def.BlockSizes
		}
		if s.PPosIn == 0 {
			s.PPosIn = def.PPosIn
		}
		if s.PNegOut == 0 {
			s.PNegOut = def.PNegOut
		}
		if s.PPosOut == 0 {
			s.PPosOut = def.PPosOut
		}
		if s.Seed == 0 {
			s.Seed = def.Seed
		}
	case variantWeighted:
		def := sbm.DefaultWeightedParams()
		if s.N == 0 {
			s.N = def.N
		}
		if len(s.BlockSizes) == 0 {
			s.BlockSizes = def.BlockSizes
		}
		if s.PIn == 0 {
			s.PIn = def.PIn
		}
		if s.POut == 0 {
			s.POut = def.POut
		}
		if s.LamIn == 0 {
			s.LamIn = def.LamIn
		}
		if s.LamOut == 0 {
			s.LamOut = def.LamOut
		}
		if s.Seed == 0 {
			s.Seed = def.Seed
		}
	default:
		return s, fmt.Errorf("%w: %q", errUnknownVariant, s.Variant)
	}
	if s.Format == "" {
		s.Format = formatJSON
	}

	return s, nil
}

// generate dispatches to the variant's generator.
func (s Scenario) generate() (*sbm.Instance, error) {
	switch s.Variant {
	case variantBinary:
		return sbm.GenerateBinary(s.N, s.BlockSizes, s.PIn, s.POut, s.Seed)
	case variantSigned:
		return sbm.GenerateSigned(s.N, s.BlockSizes, s.PPosIn, s.PNegOut, s.PPosOut, s.Seed)
	case variantWeighted:
		return sbm.GenerateWeighted(s.N, s.BlockSizes, s.PIn, s.POut, s.LamIn, s.LamOut, s.Seed)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownVariant, s.Variant)
	}
}

// probabilities lists the scenario's probability parameters relevant to its
// variant, for advisory range checks at the CLI boundary (the library itself
// trusts them by contract).
func (s Scenario) probabilities() map[string]float64 {
	switch s.Variant {
	case variantSigned:
		return map[string]float64{"p_pos_in": s.PPosIn, "p_neg_out": s.PNegOut, "p_pos_out": s.PPosOut}
	default:
		return map[string]float64{"p_in": s.PIn, "p_out": s.POut}
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// newGenerateCmd wires the generate subcommand: one instance from flags, or
// a batch from a YAML scenario file.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more synthetic network instances",
		Long: `Generate synthetic SBM instances, either from command-line flags (single
instance) or from a YAML scenario file (batch). Output is JSON or a
whitespace-separated edge list, written to --out or stdout.`,
		RunE: runGenerate,
	}

	cmd.Flags().String("scenario", "", "YAML scenario file (overrides the parameter flags)")
	cmd.Flags().String("variant", variantBinary, "Variant: binary, signed or weighted")
	cmd.Flags().Int("n", 0, "Node count (0 = variant preset)")
	cmd.Flags().String("blocks", "", "Comma-separated block sizes, e.g. 34,33,33 (empty = preset)")
	cmd.Flags().Float64("p-in", 0, "Within-block edge probability (binary/weighted)")
	cmd.Flags().Float64("p-out", 0, "Between-block edge probability (binary/weighted)")
	cmd.Flags().Float64("p-pos-in", 0, "Within-block positive-edge probability (signed)")
	cmd.Flags().Float64("p-neg-out", 0, "Between-block negative-edge probability (signed)")
	cmd.Flags().Float64("p-pos-out", 0, "Between-block positive leakage probability (signed)")
	cmd.Flags().Float64("lam-in", 0, "Within-block Poisson rate (weighted)")
	cmd.Flags().Float64("lam-out", 0, "Between-block Poisson rate (weighted)")
	cmd.Flags().Int64("seed", 0, "Random seed (0 = variant preset)")
	cmd.Flags().String("out", "", "Output path (empty = stdout)")
	cmd.Flags().String("format", formatJSON, "Output format: json or edgelist")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "text", "Log format: text or json")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	log := newLogger(logLevel, logFormat, os.Stderr)

	scenarioPath, _ := cmd.Flags().GetString("scenario")
	if scenarioPath != "" {
		sf, err := loadScenarios(scenarioPath)
		if err != nil {
			return err
		}
		log.Info("loaded scenario file", "path", scenarioPath, "scenarios", len(sf.Scenarios))
		for _, sc := range sf.Scenarios {
			if err := runScenario(sc, log); err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
		}

		return nil
	}

	sc, err := scenarioFromFlags(cmd)
	if err != nil {
		return err
	}

	return runScenario(sc, log)
}

// scenarioFromFlags assembles a single Scenario out of the parameter flags.
func scenarioFromFlags(cmd *cobra.Command) (Scenario, error) {
	var sc Scenario
	sc.Variant, _ = cmd.Flags().GetString("variant")
	sc.N, _ = cmd.Flags().GetInt("n")
	sc.PIn, _ = cmd.Flags().GetFloat64("p-in")
	sc.POut, _ = cmd.Flags().GetFloat64("p-out")
	sc.PPosIn, _ = cmd.Flags().GetFloat64("p-pos-in")
	sc.PNegOut, _ = cmd.Flags().GetFloat64("p-neg-out")
	sc.PPosOut, _ = cmd.Flags().GetFloat64("p-pos-out")
	sc.LamIn, _ = cmd.Flags().GetFloat64("lam-in")
	sc.LamOut, _ = cmd.Flags().GetFloat64("lam-out")
	sc.Seed, _ = cmd.Flags().GetInt64("seed")
	sc.Output, _ = cmd.Flags().GetString("out")
	sc.Format, _ = cmd.Flags().GetString("format")
	sc.Name = "cli"

	blocksStr, _ := cmd.Flags().GetString("blocks")
	if blocksStr != "" {
		sizes, err := parseBlockSizes(blocksStr)
		if err != nil {
			return sc, err
		}
		sc.BlockSizes = sizes
	}

	return sc, nil
}

// parseBlockSizes parses a comma-separated size list such as "34,33,33".
func parseBlockSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		sz, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("sbmgen: invalid block size %q: %w", part, err)
		}
		sizes = append(sizes, sz)
	}

	return sizes, nil
}

// runScenario resolves defaults, warns about suspicious probabilities,
// generates the instance and writes it out.
func runScenario(sc Scenario, log *slog.Logger) error {
	sc, err := sc.withDefaults()
	if err != nil {
		return err
	}

	// Advisory only: the library contract leaves out-of-range probabilities
	// undefined, so the CLI flags them for the operator instead of failing.
	for name, p := range sc.probabilities() {
		if p < 0 || p > 1 {
			log.Warn("probability outside [0,1]", "scenario", sc.Name, "param", name, "value", p)
		}
	}

	inst, err := sc.generate()
	if err != nil {
		return err
	}

	log.Info("generated instance",
		"scenario", sc.Name,
		"variant", sc.Variant,
		"n", inst.G.Order(),
		"edges", inst.G.EdgeCount(),
		"blocks", len(sc.BlockSizes),
		"seed", sc.Seed,
	)

	out := os.Stdout
	if sc.Output != "" {
		f, err := os.Create(sc.Output)
		if err != nil {
			return fmt.Errorf("sbmgen: create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch sc.Format {
	case formatEdgeList:
		err = writeEdgeList(out, inst)
	default:
		err = writeJSON(out, sc, inst)
	}
	if err != nil {
		return err
	}
	if sc.Output != "" {
		log.Debug("wrote output", "scenario", sc.Name, "path", sc.Output, "format", sc.Format)
	}

	return nil
}

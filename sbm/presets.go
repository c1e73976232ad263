// SPDX-License-Identifier: MIT
// Package sbm: canonical parameter presets.
//
// The default parameter sets produce small networks with a mild but clear
// mesoscale signal — dense enough that the connectivity repairer is a no-op
// in the typical run, sparse enough that block structure stays nontrivial.
// Fixture suites and the CLI use these as starting points.

package sbm

// BinaryParams bundles the inputs of GenerateBinary.
type BinaryParams struct {
	N          int
	BlockSizes []int
	PIn        float64
	POut       float64
	Seed       int64
}

// Generate runs GenerateBinary with the bundled parameters.
func (p BinaryParams) Generate() (*Instance, error) {
	return GenerateBinary(p.N, p.BlockSizes, p.PIn, p.POut, p.Seed)
}

// SignedParams bundles the inputs of GenerateSigned.
type SignedParams struct {
	N          int
	BlockSizes []int
	PPosIn     float64
	PNegOut    float64
	PPosOut    float64
	Seed       int64
}

// Generate runs GenerateSigned with the bundled parameters.
func (p SignedParams) Generate() (*Instance, error) {
	return GenerateSigned(p.N, p.BlockSizes, p.PPosIn, p.PNegOut, p.PPosOut, p.Seed)
}

// WeightedParams bundles the inputs of GenerateWeighted.
type WeightedParams struct {
	N          int
	BlockSizes []int
	PIn        float64
	POut       float64
	LamIn      float64
	LamOut     float64
	Seed       int64
}

// Generate runs GenerateWeighted with the bundled parameters.
func (p WeightedParams) Generate() (*Instance, error) {
	return GenerateWeighted(p.N, p.BlockSizes, p.PIn, p.POut, p.LamIn, p.LamOut, p.Seed)
}

// DefaultBinaryParams returns the canonical three-block binary preset.
func DefaultBinaryParams() BinaryParams {
	return BinaryParams{
		N:          100,
		BlockSizes: []int{34, 33, 33},
		PIn:        0.25,
		POut:       0.03,
		Seed:       12345,
	}
}

// DefaultSignedParams returns the canonical two-block signed preset.
func DefaultSignedParams() SignedParams {
	return SignedParams{
		N:          100,
		BlockSizes: []int{50, 50},
		PPosIn:     0.22,
		PNegOut:    0.18,
		PPosOut:    0.03,
		Seed:       24680,
	}
}

// DefaultWeightedParams returns the canonical three-block weighted preset.
func DefaultWeightedParams() WeightedParams {
	return WeightedParams{
		N:          100,
		BlockSizes: []int{34, 33, 33},
		PIn:        0.22,
		POut:       0.04,
		LamIn:      4.0,
		LamOut:     1.0,
		Seed:       9876,
	}
}

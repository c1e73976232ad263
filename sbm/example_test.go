package sbm_test

import (
	"fmt"

	"github.com/katalvlaran/sbmgen/sbm"
)

// ExampleGenerateBinary shows the degenerate-probability path: with
// p_in = p_out = 0 sampling yields no edges, so the repairer alone connects
// the six singleton components with a five-edge spanning chain.
func ExampleGenerateBinary() {
	inst, err := sbm.GenerateBinary(6, []int{3, 3}, 0, 0, 12345)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("labels:", inst.Labels)
	fmt.Println("edges:", inst.G.EdgeCount())
	fmt.Println("connected:", inst.G.IsConnected())
	// Output:
	// labels: [0 0 0 1 1 1]
	// edges: 5
	// connected: true
}

// ExampleSignedParams_Generate runs the canonical signed preset.
func ExampleSignedParams_Generate() {
	inst, err := sbm.DefaultSignedParams().Generate()
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("n:", inst.A.Order())
	fmt.Println("connected:", inst.G.IsConnected())
	// Output:
	// n: 100
	// connected: true
}

// Package main provides the gtn CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/gtn/gtn"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("gtn %s\n", version)
			return
		case "demo":
			runDemo()
			return
		}
	}

	fmt.Println("gtn - differentiable weighted finite-state transducers")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Score and differentiate a small example graph")
}

// runDemo builds a three-node, three-arc graph with two start-to-accept
// paths (0->1->2 and 0->2), scores it with Forward,
// backpropagates through it, and prints the resulting scalar and arc
// gradients.
func runDemo() {
	g := gtn.New()
	n0 := g.AddNode(true, false)
	n1 := g.AddNode(false, false)
	n2 := g.AddNode(false, true)
	g.AddArc(n0, n1, 1, 1, 0.1)
	g.AddArc(n1, n2, 2, 2, 0.2)
	g.AddArc(n0, n2, 1, 1, 0.5)

	score, err := gtn.Forward(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, "forward:", err)
		os.Exit(1)
	}
	value, _ := score.Item()
	fmt.Printf("forward score: %f\n", value)

	if err := gtn.Backward(score); err != nil {
		fmt.Fprintln(os.Stderr, "backward:", err)
		os.Exit(1)
	}
	grad, ok := g.Grad()
	if !ok {
		fmt.Println("no gradient accumulated")
		return
	}
	for a := 0; a < g.NumArcs(); a++ {
		fmt.Printf("arc %d weight=%f grad=%f\n", a, g.Weight(a), grad.Weight(a))
	}
}

// Package main provides the Strata ML Framework CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/strata-ml/strata/nn"
	"github.com/strata-ml/strata/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Strata ML Framework %s\n", version)
			return
		case "xor":
			if err := runXOR(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "xor: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Strata ML Framework - Dense Networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a small network on the XOR truth table")
	fmt.Println("")
	fmt.Println("Coming soon: train, infer, serve")
}

// runXOR trains a 2-4-1 network on XOR and prints the learned
// predictions.
func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ExitOnError)
	epochs := fs.Int("epochs", 2000, "Number of training epochs")
	lr := fs.Float64("lr", 0.5, "Learning rate")
	momentum := fs.Float64("momentum", 0.9, "SGD momentum")
	seed := fs.Int64("seed", 42, "Weight initialization seed (0 = time-based)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {1}, {1}, {0}}

	net, err := nn.New(
		[]int{2, 4, 1},
		[]nn.Activation{nn.Tanh{}, nn.Sigmoid{}},
		nn.Config{Seed: *seed},
	)
	if err != nil {
		return err
	}

	trainer := optim.NewTrainer(net, optim.NewSGD(optim.SGDConfig{
		LR:       *lr,
		Momentum: *momentum,
	}))

	history, err := trainer.Fit(inputs, targets, *epochs)
	if err != nil {
		return err
	}

	every := *epochs / 10
	if every == 0 {
		every = 1
	}
	for i := every - 1; i < len(history); i += every {
		fmt.Printf("Epoch %4d/%d: Loss=%.6f\n", i+1, *epochs, history[i])
	}

	fmt.Println("\nPredictions:")
	for i, in := range inputs {
		out, err := net.Forward(in)
		if err != nil {
			return err
		}
		fmt.Printf("  %.0f XOR %.0f = %.4f (want %.0f)\n", in[0], in[1], out[0], targets[i][0])
	}
	return nil
}

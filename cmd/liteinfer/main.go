// Package main provides the liteinfer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/liteinfer/iomap"
	"github.com/born-ml/liteinfer/litert"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("liteinfer %s\n", version)
			return
		case "info":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: liteinfer info <model-file>")
				os.Exit(1)
			}
			if err := printModelInfo(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "liteinfer: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("liteinfer - Inference tensor I/O remapping for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  info <model>      Show a model's signatures and tensor names")
}

func printModelInfo(path string) error {
	model, err := litert.LoadModelFromFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Model: %s (schema version %d)\n", path, model.Version())
	if desc := model.Description(); desc != "" {
		fmt.Printf("Description: %s\n", desc)
	}
	for k, v := range model.Metadata() {
		fmt.Printf("Metadata: %s = %s\n", k, v)
	}
	fmt.Printf("Tensors: %d, inputs: %d, outputs: %d\n",
		len(model.Primary().Tensors), len(model.Primary().Inputs), len(model.Primary().Outputs))

	names := iomap.GetInputOutputTensorNamesFromModel(model, litert.NewBuiltinResolver())
	if len(names) == 0 {
		fmt.Println("Signatures: none (tensor name-based I/O mapping unavailable)")
		return nil
	}

	fmt.Printf("Signatures: %d\n", len(names))
	for key, tn := range names {
		fmt.Printf("  %s\n", key)
		fmt.Printf("    inputs:  %v\n", tn.Input)
		fmt.Printf("    outputs: %v\n", tn.Output)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"greedydag/grammar"
	"greedydag/internal/costmodel"
	"greedydag/internal/egraph"
	"greedydag/internal/errors"
	"greedydag/internal/extract"
	"greedydag/internal/termdag"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: extract-cli <egraph.json> [cost-model.dsl]")
		os.Exit(1)
	}

	graphPath := os.Args[1]

	data, err := os.ReadFile(graphPath)
	if err != nil {
		color.Red("failed to read %s: %s", graphPath, err)
		os.Exit(1)
	}

	g, err := egraph.Decode(data)
	if err != nil {
		color.Red("failed to decode e-graph: %s", err)
		os.Exit(1)
	}

	model, err := loadModel(os.Args)
	if err != nil {
		os.Exit(1)
	}

	td := termdag.New()
	cs, err := extract.Run(g, nil, model, td)
	if err != nil {
		reportExtractError(err)
		os.Exit(1)
	}

	fmt.Println(termdag.Print(cs.Term))
	color.Green("total cost: %g", cs.Total)
}

// loadModel builds the cost model: the default table, or a
// DSL-configured overlay if a second argument names a file.
func loadModel(args []string) (costmodel.Model, error) {
	if len(args) < 3 {
		return costmodel.DefaultModel{}, nil
	}

	dslPath := args[2]
	source, err := os.ReadFile(dslPath)
	if err != nil {
		color.Red("failed to read %s: %s", dslPath, err)
		return nil, err
	}

	prog, err := grammar.ParseString(dslPath, string(source))
	if err != nil {
		grammar.ReportParseError(string(source), err)
		return nil, err
	}

	model, err := costmodel.NewConfiguredModel(prog)
	if err != nil {
		color.Red("bad cost-model file: %s", err)
		return nil, err
	}
	return model, nil
}

// reportExtractError prints a fatal extraction error as a single
// colored line, with no stack trace.
func reportExtractError(err error) {
	if ee, ok := err.(*errors.ExtractError); ok {
		r := errors.NewReporter("")
		r.Print(ee)
		return
	}
	if _, ok := err.(participle.Error); ok {
		grammar.ReportParseError("", err)
		return
	}
	color.Red("extraction failed: %s", err)
}

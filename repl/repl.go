// SPDX-License-Identifier: Apache-2.0

// Package repl is an interactive loop over the extractor: each line
// read is treated as a path to a serialized e-graph JSON file, which
// is decoded and extracted immediately, with the chosen term and its
// cost printed before the next prompt.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"greedydag/internal/costmodel"
	"greedydag/internal/egraph"
	"greedydag/internal/extract"
	"greedydag/internal/termdag"
)

const prompt = ">> "

// Start runs the REPL loop against in, writing prompts and results to
// stdout until in is exhausted.
func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)
	model := costmodel.DefaultModel{}

	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return
		}

		path := scanner.Text()
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			color.Red("failed to read %s: %s", path, err)
			continue
		}

		g, err := egraph.Decode(data)
		if err != nil {
			color.Red("failed to decode e-graph: %s", err)
			continue
		}

		td := termdag.New()
		cs, err := extract.Run(g, nil, model, td)
		if err != nil {
			color.Red("extraction failed: %s", err)
			continue
		}

		fmt.Printf("term: %s\n", termdag.Print(cs.Term))
		color.Green("total cost: %g", cs.Total)
	}
}

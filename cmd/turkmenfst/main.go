// Command turkmenfst is the command-line interface of the Turkmen
// morphological engine.
package main

import (
	"fmt"
	"os"

	"github.com/turkmen-nlp/turkmenfst/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

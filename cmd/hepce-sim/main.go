package main

import (
	"fmt"
	"os"

	"github.com/SyndemicsLab/hep-ce-go/cmd/hepce-sim/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

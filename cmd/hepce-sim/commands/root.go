// Package commands wires the hepce-sim CLI surface: an executable taking
// [input_root] [start_run_index] [end_run_index]; each run i reads an
// input<i> subdirectory and writes output<i> (spec §6).
package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	hepce "github.com/SyndemicsLab/hep-ce-go"
	"github.com/SyndemicsLab/hep-ce-go/config"
	"github.com/SyndemicsLab/hep-ce-go/datasource"
	"github.com/SyndemicsLab/hep-ce-go/logging"
	"github.com/SyndemicsLab/hep-ce-go/population"
)

var rootCmd = &cobra.Command{
	Use:   "hepce-sim [input_root] [start_run_index] [end_run_index]",
	Short: "hepce-sim runs the HEP-CE hepatitis C / HIV microsimulation",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputRoot := args[0]
		start, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("start_run_index: %w", err)
		}
		end, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("end_run_index: %w", err)
		}
		for i := start; i <= end; i++ {
			if err := runOne(inputRoot, i); err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runOne(inputRoot string, i int) error {
	inputDir := filepath.Join(inputRoot, fmt.Sprintf("input%d", i))
	outputDir := filepath.Join(inputRoot, fmt.Sprintf("output%d", i))

	logFactory, err := logging.NewFactory(filepath.Join(outputDir, "logs"))
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	loggers := logFactory.Named()
	log := loggers("hepce-sim")

	cfg, err := config.Load(filepath.Join(inputDir, "config.toml"))
	if err != nil {
		return err
	}

	ds, err := datasource.Open(cfg, filepath.Join(inputDir, "inputs.db"))
	if err != nil {
		return err
	}
	defer ds.Close()

	events, err := hepce.CreateEvents(ds, loggers)
	if err != nil {
		return err
	}

	people, err := hepce.LoadPopulation(ds, log)
	if err != nil {
		return err
	}

	engine := hepce.NewEngine(ds, log, events)
	if err := engine.Run(people); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	if err := ensureDir(outputDir); err != nil {
		return err
	}
	writer := population.NewWriter(filepath.Join(outputDir, "population.csv"), hepce.OutputOptionsFor(events))
	return writer.WriteAll(people)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/digitsplit/internal/adapters/decimal"
	"github.com/AntonioJCosta/digitsplit/internal/adapters/decompcache"
	"github.com/AntonioJCosta/digitsplit/internal/adapters/numberfile"
	"github.com/AntonioJCosta/digitsplit/internal/config"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
	"github.com/AntonioJCosta/digitsplit/internal/core/services/decomposition"
	"github.com/AntonioJCosta/digitsplit/internal/handlers/cli"
	"github.com/AntonioJCosta/digitsplit/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

// stderr receives warnings and errors.
var stderr io.Writer = os.Stderr

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	rootCmd := cli.NewRootCommand(Version, newService)
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	return 0
}

// newService wires the decomposer, its cache and the optional number file.
func newService(cfg *config.Config, numberFile string) (ports.DecompositionService, error) {
	decomposer, err := decompcache.NewCachedDecomposer(decimal.NewDecomposer(), cfg.Cache.Size)
	if err != nil {
		return nil, fmt.Errorf("error initializing decomposer: %w", err)
	}

	// numberSource stays nil unless a command reads numbers from a file.
	var numberSource ports.NumberSource
	if numberFile != "" {
		numberSource, err = numberfile.NewYAMLProvider(numberFile)
		if err != nil {
			return nil, fmt.Errorf("error initializing number file provider: %w", err)
		}
		if _, statErr := os.Stat(numberFile); os.IsNotExist(statErr) {
			fmt.Fprintln(stderr, ui.WarningColor(fmt.Sprintf("Warning: number file %s does not exist. Continuing with no numbers.", numberFile)))
		}
	}

	return decomposition.NewService(decomposer, numberSource), nil
}

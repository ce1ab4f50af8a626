package cli

import (
	"fmt"

	"github.com/AntonioJCosta/digitsplit/internal/config"
	"github.com/AntonioJCosta/digitsplit/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// newBatchCommand creates the 'batch' subcommand.
func newBatchCommand(s *session) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Decompose every number listed in a YAML file.",
		Long: `Reads a YAML document of the form

  numbers: [15, 97, 549]

and prints each number's digits followed by the digit tally across the whole file.
The batch fails as a whole if any number is negative.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatchCmd(cmd, args, s)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file listing the numbers to decompose.")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runBatchCmd(cmd *cobra.Command, _ []string, s *session) error {
	result, err := s.service.DecomposeFromSource()
	if err != nil {
		return fmt.Errorf("could not run batch: %w", err)
	}

	out := cmd.OutOrStdout()
	if s.cfg.Output.Format == config.FormatYAML {
		return renderBatchYAML(out, result)
	}

	if len(result.Decompositions) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No numbers found to decompose."))
		if result.SourceDetails != "" {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", result.SourceDetails)))
		}
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Digits:"))
	if err := renderDigits(out, s.cfg.Output.Format, result.Decompositions); err != nil {
		return err
	}
	fmt.Fprintln(out, ui.HeaderColor("Digit frequency across all numbers:"))
	if err := renderAggregate(out, s.cfg.Output.Format, result); err != nil {
		return err
	}
	if result.SourceDetails != "" {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("\n(Source: %s)", result.SourceDetails)))
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSplitCommand creates the 'split' subcommand.
func newSplitCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <number>...",
		Short: "Print the decimal digits of each number.",
		Long: `Splits every given number into its base-10 digits, most significant first.
Negative numbers are rejected as invalid arguments.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplitCmd(cmd, args, s)
		},
	}
	return cmd
}

func runSplitCmd(cmd *cobra.Command, args []string, s *session) error {
	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}

	result, err := s.service.DecomposeBatch(numbers)
	if err != nil {
		return fmt.Errorf("could not split numbers: %w", err)
	}

	return renderDigits(cmd.OutOrStdout(), s.cfg.Output.Format, result.Decompositions)
}

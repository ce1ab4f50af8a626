package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCountCommand creates the 'count' subcommand.
func newCountCommand(s *session) *cobra.Command {
	var aggregate bool

	cmd := &cobra.Command{
		Use:   "count <number>...",
		Short: "Tally how often each digit 0-9 occurs.",
		Long:  `Counts the occurrences of every digit value in each given number. All ten digits are always listed.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, args, s)
		},
	}

	cmd.Flags().BoolVarP(&aggregate, "aggregate", "a", false, "Print a single tally summed over all numbers.")

	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string, s *session) error {
	aggregate, _ := cmd.Flags().GetBool("aggregate")

	numbers, err := parseNumbers(args)
	if err != nil {
		return err
	}

	result, err := s.service.DecomposeBatch(numbers)
	if err != nil {
		return fmt.Errorf("could not count digits: %w", err)
	}

	out := cmd.OutOrStdout()
	if aggregate {
		return renderAggregate(out, s.cfg.Output.Format, result)
	}
	return renderFrequencies(out, s.cfg.Output.Format, result.Decompositions)
}

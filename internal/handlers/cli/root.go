package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/digitsplit/internal/config"
	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
	"github.com/AntonioJCosta/digitsplit/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the decomposition service once configuration is known.
// numberFile is empty unless the running command reads numbers from a file.
type ServiceFactory func(cfg *config.Config, numberFile string) (ports.DecompositionService, error)

// session carries what PersistentPreRunE resolved to the subcommands.
type session struct {
	cfg     *config.Config
	service ports.DecompositionService
}

func NewRootCommand(version string, newService ServiceFactory) *cobra.Command {
	s := &session{}
	var cfgFile, output string
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "digitsplit",
		Short: "digitsplit breaks integers into their decimal digits.",
		Long: `digitsplit decomposes non-negative integers into their base-10 digits,
most significant first, and tallies how often each digit 0-9 occurs.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newService == nil {
				return fmt.Errorf("decomposition service not initialized for command %s", cmd.Name())
			}

			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Format = output
			}
			if noColor {
				cfg.Output.Color = false
			}
			if errs := cfg.Validate(); len(errs) > 0 {
				return config.ValidationErrors(errs)
			}
			if !cfg.Output.Color {
				ui.Disable()
			}

			numberFile := ""
			if f := cmd.Flags().Lookup("file"); f != nil {
				numberFile = f.Value.String()
			}

			svc, err := newService(cfg, numberFile)
			if err != nil {
				return fmt.Errorf("could not initialize decomposition service: %w", err)
			}
			s.cfg = cfg
			s.service = svc
			return nil
		},
	}

	rootCmd.SetFlagErrorFunc(negativeNumberFlagError)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", fmt.Sprintf("config file (default is %s)", config.ConfigFile()))
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: text, table or yaml (default from config, else text)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(newSplitCommand(s))
	rootCmd.AddCommand(newCountCommand(s))
	rootCmd.AddCommand(newBatchCommand(s))

	return rootCmd
}

func loadConfig(cfgFile string) (*config.Config, error) {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// negativeNumberFlagError reports "-5" as a negative number rather than an
// unknown shorthand flag. pflag ends such errors with "in -<shorthands>".
func negativeNumberFlagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	i := strings.LastIndex(msg, " in -")
	if i < 0 {
		return err
	}
	arg := msg[i+len(" in "):]
	if n, parseErr := strconv.ParseInt(arg, 10, 64); parseErr == nil && n < 0 {
		return fmt.Errorf("number must not be negative, got %d: %w", n, digits.ErrInvalidArgument)
	}
	return err
}

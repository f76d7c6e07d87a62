package main

import (
	"github.com/spf13/cobra"

	"quote-generator/internal/config"
	"quote-generator/internal/logging"
)

type rootParams struct {
	configPath string
	debug      bool
	logFormat  string
}

func newCmdRoot() *cobra.Command {
	var params rootParams

	cmd := &cobra.Command{
		Use:   "quote-generator",
		Short: "Derive constructors and ToTokens methods for Go structs",
		Long: `quote-generator reads the structs marked with //quote:derive (or listed in
quote.yaml) and writes, next to them, a constructor and a ToTokens method that
appends an expression rebuilding the value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.SetupLogging(cmd.ErrOrStderr(), params.logFormat, params.debug)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&params.configPath, "config", "", "Config file (default "+config.DefaultFile+" when present)")
	flags.BoolVar(&params.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&params.logFormat, "log-format", string(logging.LogFormatText), "Log format, text or json")

	cmd.AddCommand(
		newCmdGen(&params),
		newCmdCheck(&params),
		newCmdShapes(&params),
		newCmdInit(),
	)

	return cmd
}

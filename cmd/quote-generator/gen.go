package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"quote-generator/internal/gen"
)

func addSelectFlags(flags *pflag.FlagSet, params *selectParams) {
	flags.StringSliceVarP(&params.types, "type", "t", nil, "Derive only the named types (repeatable)")
	flags.StringVar(&params.modPath, "mod-path", "", "Qualifying path for the types named with --type")
	flags.StringVarP(&params.output, "output", "o", "", "Name of the generated file in each package")
}

func newCmdGen(root *rootParams) *cobra.Command {
	var (
		params selectParams
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate constructors and ToTokens methods",
		Long: `Generate writes one file per package holding, for each selected struct, a
constructor and a ToTokens method. Packages default to the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}

			results, diags, err := deriveAll(cmd.Context(), cfg, &params, false, args)
			if err != nil {
				return err
			}
			printDiagnostics(cmd, root, diags)

			var files []*gen.GeneratedFile
			for _, r := range results {
				if r.file == nil {
					continue
				}

				if dryRun {
					fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s", r.file.Path(), r.file.Content)
					continue
				}
				files = append(files, r.file)
			}

			return gen.WriteFiles(files)
		},
	}

	addSelectFlags(cmd.Flags(), &params)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print generated files instead of writing them")

	return cmd
}

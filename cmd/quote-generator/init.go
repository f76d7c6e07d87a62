package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"quote-generator/internal/config"
)

func newCmdInit() *cobra.Command {
	var (
		path  string
		force bool
		types []string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.DefaultFile,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			cfg := config.Default()
			for _, ref := range types {
				pkgPath, name := config.SplitTypeRef(ref)
				cfg.Types = append(cfg.Types, config.TypeEntry{Package: pkgPath, Name: name})
			}

			if err := config.Validate(cfg); err != nil {
				return err
			}

			if err := config.WriteFile(cfg, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", config.DefaultFile, "Path of the config file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().StringSliceVarP(&types, "type", "t", nil, "Types to list in the file, as import/path.Name")

	return cmd
}

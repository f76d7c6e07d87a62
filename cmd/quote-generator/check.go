package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"quote-generator/internal/gen"
)

var errStale = errors.New("generated files are out of date, run quote-generator gen")

func newCmdCheck(root *rootParams) *cobra.Command {
	var params selectParams

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Report generated files that are out of date",
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

			colored := false
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				colored = isTerminal(f)
			}

			stale := false
			for _, r := range results {
				if r.file == nil {
					continue
				}

				st, err := gen.Check(r.file)
				if err != nil {
					return err
				}

				if st.Stale {
					stale = true
					printDiff(cmd.OutOrStdout(), r.file.Path(), st, colored)
				}
			}

			if stale {
				return errStale
			}

			return nil
		},
	}

	addSelectFlags(cmd.Flags(), &params)

	return cmd
}

// printDiff writes the changed lines of st, with one line of context.
func printDiff(w io.Writer, path string, st *gen.Staleness, colored bool) {
	header := color.New(color.Bold)
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	for _, c := range []*color.Color{header, added, removed} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if st.Missing {
		header.Fprintf(w, "%s: missing\n", path)
		return
	}

	header.Fprintf(w, "--- %s\n+++ %s (generated)\n", path, path)

	lines := st.Lines
	for i, l := range lines {
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			added.Fprintf(w, "+%s\n", l.Text)
		case diffmatchpatch.DiffDelete:
			removed.Fprintf(w, "-%s\n", l.Text)
		default:
			near := (i > 0 && lines[i-1].Op != diffmatchpatch.DiffEqual) ||
				(i+1 < len(lines) && lines[i+1].Op != diffmatchpatch.DiffEqual)
			if near {
				fmt.Fprintf(w, " %s\n", l.Text)
			}
		}
	}
}

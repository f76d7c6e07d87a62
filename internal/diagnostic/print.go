package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Fprint writes one line per diagnostic, errors first, followed by its
// suggestions. Severities are coloured when colored is set.
func Fprint(w io.Writer, d *Diagnostics, colored bool) {
	paint := func(attr color.Attribute, s string) string {
		c := color.New(attr, color.Bold)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c.Sprint(s)
	}

	groups := []struct {
		list []Diagnostic
		attr color.Attribute
	}{
		{d.Errors, color.FgRed},
		{d.Warnings, color.FgYellow},
		{d.Infos, color.FgCyan},
	}

	for _, g := range groups {
		for _, diag := range g.list {
			fmt.Fprintf(w, "%s: %s\n", paint(g.attr, diag.Severity.String()), diag)
			for _, s := range diag.Suggestions {
				fmt.Fprintf(w, "\thint: %s\n", s)
			}
		}
	}
}

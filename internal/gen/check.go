package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine is one line of a line-based diff.
type DiffLine struct {
	Op   diffmatchpatch.Operation
	Text string
}

// Staleness compares a generated file with the copy on disk.
type Staleness struct {
	// Stale is set when the file on disk is missing or differs.
	Stale bool
	// Missing is set when there is no file on disk.
	Missing bool
	// Lines is the line diff from the file on disk to the generated one.
	Lines []DiffLine
}

// Check compares f with the file at f.Path().
func Check(f *GeneratedFile) (*Staleness, error) {
	current, err := os.ReadFile(f.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return &Staleness{Stale: true, Missing: true, Lines: DiffText("", string(f.Content))}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Path(), err)
	}

	if bytes.Equal(current, f.Content) {
		return &Staleness{}, nil
	}

	return &Staleness{Stale: true, Lines: DiffText(string(current), string(f.Content))}, nil
}

// DiffText returns the line diff turning from into to.
func DiffText(from, to string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: d.Type, Text: strings.TrimSuffix(line, "\n")})
		}
	}

	return out
}


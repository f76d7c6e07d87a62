package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes code that gofmt rejected to a sidecar file
// next to the intended output. Failures are ignored by callers.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}
	// Keep the .go suffix for editors; the sidecar carries the generated
	// header so the next load skips it.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}

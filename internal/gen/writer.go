package gen

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"quote-generator/internal/logging/logfields"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its directory, creating the
// directory if it doesn't exist. Nil entries are skipped.
func WriteFiles(files []*GeneratedFile) error {
	for _, file := range files {
		if file == nil {
			continue
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		log.WithFields(logrus.Fields{
			logfields.File: file.Path(),
		}).Info("Wrote generated file")
	}

	return nil
}

// Package logging holds the logger shared by every quote-generator package.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"

	// DefaultLogFormat is used unless the user asks for JSON.
	DefaultLogFormat LogFormat = LogFormatText

	// DefaultLogLevel is the level used without --debug.
	DefaultLogLevel logrus.Level = logrus.InfoLevel
)

// DefaultLogger is the base logrus logger. It is different from the logrus
// default so that libraries logging through logrus do not write to our output.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(GetFormatter(DefaultLogFormat))
	logger.SetLevel(DefaultLogLevel)

	return logger
}

// SetupLogging configures the DefaultLogger for a CLI run.
func SetupLogging(out io.Writer, format string, debug bool) error {
	logFormat := LogFormat(strings.ToLower(format))
	if logFormat == "" {
		logFormat = DefaultLogFormat
	}

	formatter := GetFormatter(logFormat)
	if formatter == nil {
		return fmt.Errorf("unsupported log format %q, expected %q or %q", format, LogFormatText, LogFormatJSON)
	}

	DefaultLogger.SetFormatter(formatter)
	DefaultLogger.SetOutput(out)

	if debug {
		SetLogLevelToDebug()
	} else {
		DefaultLogger.SetLevel(DefaultLogLevel)
	}

	// always suppress the default logger so libraries don't print things
	logrus.SetLevel(logrus.PanicLevel)

	return nil
}

// SetLogLevelToDebug updates the DefaultLogger with the logrus.DebugLevel
func SetLogLevelToDebug() {
	DefaultLogger.SetLevel(logrus.DebugLevel)
}

// GetFormatter returns the formatter for format, or nil if it is unknown.
func GetFormatter(format LogFormat) logrus.Formatter {
	switch format {
	case LogFormatText:
		return &logrus.TextFormatter{
			DisableTimestamp: true,
		}
	case LogFormatJSON:
		return &logrus.JSONFormatter{
			DisableTimestamp: true,
		}
	}

	return nil
}

// Package log owns the process-wide logrus logger. Commands hand components a
// *logrus.Entry scoped with a "component" field instead of logging globally.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/hugopost/hugopost/internal/branding"
	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// Tests use components without going through main, so the logger has to
// exist before any command runs.
func init() {
	InitLogger(os.Stderr)
}

// InitLogger replaces the global logger with one writing plain text to w.
func InitLogger(w io.Writer) {
	logger = logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	Log = logger.WithFields(logrus.Fields{"cli": branding.CLIName()})
}

// SetLevel parses level ("debug", "info", "warn", ...) and applies it.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// For returns an entry tagged with the given component name.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

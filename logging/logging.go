package logging

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger is the root logger every bound scope derives from.
var Logger = logrus.New()

// Bind returns a logger for a named scope such as "wsrp:transport:nats".
// Scoped loggers emit at trace level for step by step debugging and at the
// usual levels for anything an operator should see.
func Bind(scope string) *logrus.Entry {
	return Logger.WithField("scope", scope)
}

// Configure sets the level and output format of the root logger. Format is
// either "text" or "json".
func Configure(level string, format string) error {
	if level == "" {
		level = "info"
	}
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	Logger.SetLevel(parsedLevel)
	Logger.SetOutput(os.Stderr)

	switch strings.ToLower(format) {
	case "", "text":
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("invalid log format %q", format)
	}
	return nil
}

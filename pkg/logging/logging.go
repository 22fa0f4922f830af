// Package logging builds the logger behind --debug. It only ever writes to
// the side channel, never to the status line stream.
package logging

import (
	"io"

	"github.com/jwalton/go-supportscolor"
	log "github.com/sirupsen/logrus"
)

// New returns a logger writing to w. Debug output is enabled when debug is
// true; otherwise only warnings and above are emitted.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:    !supportscolor.Stderr().SupportsColor,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})
	logger.SetLevel(log.WarnLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

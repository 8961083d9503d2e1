package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides component-scoped structured logging
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// ParseLevel maps a configuration string onto a zerolog level.
// Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NoOp discards everything. Used by tests and headless tooling.
type NoOp struct{}

func (NoOp) Info(component string, message string, fields map[string]interface{})    {}
func (NoOp) Error(component string, err error, fields map[string]interface{})        {}
func (NoOp) Warning(component string, message string, fields map[string]interface{}) {}
func (NoOp) Debug(component string, message string, fields map[string]interface{})   {}

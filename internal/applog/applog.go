package applog

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// scopeFieldName defines the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// NewLogger creates a human-readable zerolog.Logger writing to out at the
// given level. The instance is meant to be handed to components through
// their constructors.
func NewLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
		// FormatPrepare renders the scope as [SCOPE] before the message.
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = ""
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
		NoColor:       true,
	}

	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// WithScope returns a sub-logger tagged with a component name such as
// "TREE" or "LIST".
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

// Package logging builds the hclog logger used by the haxxor CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// JSONEnv switches the logger to JSON output when set to "1".
const JSONEnv = "HAXXOR_JSON_LOG"

// NewLogger creates an hclog logger with UTC timestamps.
// A nil output writes to stderr.
func NewLogger(name, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(JSONEnv) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

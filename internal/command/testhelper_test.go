package command

import (
	"bytes"
	"strings"
	"testing"
)

// run executes the app with args and returns what it wrote to stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string) {
	t.Helper()

	app := App()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	if err := app.Run(append([]string{"haxxor"}, args...)); err != nil {
		t.Fatalf("Run(%v) error: %v", args, err)
	}
	return out.String(), errOut.String()
}

// consoleError renders msg the way the CLI reports errors.
func consoleError(msg string) string {
	return "\nError: " + msg + "\n\n"
}

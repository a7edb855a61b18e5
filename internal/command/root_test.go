package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApp(t *testing.T) {
	app := App()
	if app == nil {
		t.Fatal("App() returned nil")
	}
	if app.Name != "haxxor" {
		t.Errorf("Name = %q, want %q", app.Name, "haxxor")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"encrypt", "decrypt", "cycle", "validate", "list", "version", "help", "shell"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range globalFlags() {
		flagNames[flag.Names()[0]] = true
	}
	for _, name := range []string{"config", "output", "log-level", "no-tag", "module"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestRoot_NoArgsPrintsManual(t *testing.T) {
	out, _ := run(t, "")
	if !strings.Contains(out, "Haxxor :: Help Manual") {
		t.Errorf("output = %q, want help manual", out)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	out, errOut := run(t, "", "explode")
	if out != "" {
		t.Errorf("stdout = %q, want empty", out)
	}
	if errOut != consoleError("Invalid argument supplied: explode") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestSetup_UnknownOutput(t *testing.T) {
	app := App()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}

	if err := app.Run([]string{"haxxor", "--output", "toml", "list"}); err == nil {
		t.Error("Run() should fail for an unknown output format")
	}
}

func TestSetup_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haxxor.yaml")
	if err := os.WriteFile(path, []byte("include_tag: false\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	out, _ := run(t, "", "--config", path, "encrypt", "sha1", "hello")
	if out != "qvTGHdzF6KLavt4PO0gs2a6pQ00=\n" {
		t.Errorf("output = %q, want untagged digest", out)
	}
}

func TestSetup_DebugLogging(t *testing.T) {
	_, errOut := run(t, "", "--log-level", "debug", "encrypt", "aes128", "hello")
	if !strings.Contains(errOut, "configuration loaded") {
		t.Errorf("stderr = %q, want debug log", errOut)
	}
	if !strings.Contains(errOut, "****") {
		t.Errorf("stderr = %q, want masked hash in log", errOut)
	}
}

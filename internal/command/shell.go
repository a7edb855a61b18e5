package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/haxxor"
)

// Shell directives.
const (
	directiveEncrypt = ":encrypt"
	directiveDecrypt = ":decrypt"
	directiveModule  = ":module"
	directiveQuit    = ":quit"
)

const shellUsage = `Type text to transform it with the current module.
  :encrypt          switch to encrypt mode
  :decrypt          switch to decrypt mode
  :module <name>    switch module
  :quit             leave the shell`

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Starts an interactive session that transforms every line entered",
		Action: func(c *cli.Context) error {
			st := getState(c)
			m, ok := st.module(st.cfg.Module)
			if !ok {
				return nil
			}
			return newShell(m, c.App.Writer, st.log).run(c.App.Reader)
		},
	}
}

// shell transforms each input line with the current module and mode.
// Encrypt mode never writes the tag layer.
type shell struct {
	module  haxxor.Module
	decrypt bool
	out     io.Writer
	log     hclog.Logger
}

func newShell(m haxxor.Module, out io.Writer, log hclog.Logger) *shell {
	return &shell{module: m, out: out, log: log}
}

func (s *shell) mode() string {
	if s.decrypt {
		return "decrypt"
	}
	return "encrypt"
}

func (s *shell) prompt() {
	fmt.Fprintf(s.out, "%s/%s> ", s.module.Tag(), s.mode())
}

// run reads lines until EOF or :quit.
func (s *shell) run(in io.Reader) error {
	fmt.Fprintln(s.out, shellUsage)

	reader := bufio.NewReader(in)
	for {
		s.prompt()

		line, err := reader.ReadString('\n')
		if line != "" && !s.handle(strings.TrimRight(line, "\r\n")) {
			return nil
		}
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handle processes one line and reports whether the shell keeps running.
func (s *shell) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return true
	case trimmed == directiveQuit:
		return false
	case trimmed == directiveEncrypt:
		s.decrypt = false
		fmt.Fprintln(s.out, "mode: encrypt")
		return true
	case trimmed == directiveDecrypt:
		s.decrypt = true
		fmt.Fprintln(s.out, "mode: decrypt")
		return true
	case trimmed == directiveModule || strings.HasPrefix(trimmed, directiveModule+" "):
		s.switchModule(strings.TrimSpace(strings.TrimPrefix(trimmed, directiveModule)))
		return true
	}

	out, err := s.transform(line)
	if err != nil {
		s.log.Debug("shell transform failed", "module", s.module.Tag(), "mode", s.mode(), "error", err)
		fmt.Fprintf(s.out, "! %s\n", err)
		return true
	}
	fmt.Fprintln(s.out, out)
	return true
}

func (s *shell) switchModule(name string) {
	m, found, err := haxxor.ByName(name)
	if err != nil || !found || haxxor.IsPlaceholder(m) {
		fmt.Fprintf(s.out, "! %s\n", msgInvalidModule)
		return
	}
	s.module = m
	fmt.Fprintf(s.out, "module: %s\n", m.Tag())
}

func (s *shell) transform(text string) (string, error) {
	if !s.decrypt {
		return s.module.Encrypt(text, false)
	}
	if !s.module.Reversible() {
		return "", errors.New(msgNotReversible)
	}
	return s.module.Decrypt(text)
}

// Package command provides the haxxor CLI.
//
// It uses urfave/cli/v2 for command parsing. Every command reports bad input
// as a console message and exits cleanly; only setup failures (an unreadable
// config file, an unknown output format) are returned as errors.
package command

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/haxxor"
	"github.com/zoobzio/haxxor/internal/config"
	"github.com/zoobzio/haxxor/internal/logging"
	"github.com/zoobzio/haxxor/internal/output"
)

// Version of the CLI, set via ldflags.
var Version = "v0.9.0"

// Console messages.
const (
	msgArgCount         = `Incorrect number of arguments supplied. Use "help".`
	msgInvalidModule    = "Invalid module type supplied."
	msgNotReversible    = "Module does not support decrypting."
	msgNothingRecovered = "No decryptable modules found."
	msgInvalidArgument  = "Invalid argument supplied: "
)

const metaState = "state"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:            "haxxor",
		Usage:           "Encrypt, hash, decrypt and validate self-describing hashes",
		Version:         Version,
		HideVersion:     true,
		HideHelpCommand: true,
		Flags:           globalFlags(),
		Commands: []*cli.Command{
			EncryptCommand(),
			DecryptCommand(),
			CycleCommand(),
			ValidateCommand(),
			ListCommand(),
			VersionCommand(),
			HelpCommand(),
			ShellCommand(),
		},
		Before:   setup,
		Action:   rootAction,
		Metadata: map[string]any{},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"HAXXOR_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml, xml, msgpack, bson",
			Value:   "text",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: trace, debug, info, warn, error, off",
			Value: "warn",
		},
		&cli.BoolFlag{
			Name:  "no-tag",
			Usage: "Omit the module tag from encrypt output",
		},
		&cli.StringFlag{
			Name:    "module",
			Aliases: []string{"m"},
			Usage:   "Starting module of the interactive shell",
			Value:   haxxor.SHA1.String(),
		},
	}
}

// state is the per-invocation state built by setup.
type state struct {
	cfg    config.Config
	log    hclog.Logger
	out    *output.Printer
	errOut io.Writer
}

// setup merges configuration, then builds the printer and logger.
// Flags only override file and environment values when explicitly set.
func setup(c *cli.Context) error {
	overrides := map[string]any{}
	if c.IsSet("output") {
		overrides[config.KeyOutput] = c.String("output")
	}
	if c.IsSet("log-level") {
		overrides[config.KeyLogLevel] = c.String("log-level")
	}
	if c.IsSet("module") {
		overrides[config.KeyModule] = c.String("module")
	}
	if c.IsSet("no-tag") {
		overrides[config.KeyIncludeTag] = !c.Bool("no-tag")
	}

	cfg, err := config.NewLoader(config.WithConfigFile(c.String("config"))).Load(overrides)
	if err != nil {
		return err
	}

	printer, err := output.New(c.App.Writer, cfg.Output)
	if err != nil {
		return err
	}

	logger := logging.NewLogger("haxxor", cfg.LogLevel, c.App.ErrWriter)
	logger.Debug("configuration loaded",
		"output", cfg.Output,
		"module", cfg.Module,
		"include_tag", cfg.IncludeTag,
	)

	c.App.Metadata[metaState] = &state{
		cfg:    cfg,
		log:    logger,
		out:    printer,
		errOut: c.App.ErrWriter,
	}
	return nil
}

// getState retrieves the state stored by setup.
func getState(c *cli.Context) *state {
	if st, ok := c.App.Metadata[metaState].(*state); ok {
		return st
	}
	return &state{
		cfg:    config.Default(),
		log:    hclog.NewNullLogger(),
		out:    mustPrinter(c.App.Writer),
		errOut: c.App.ErrWriter,
	}
}

func mustPrinter(w io.Writer) *output.Printer {
	p, _ := output.New(w, output.Text)
	return p
}

// rootAction prints the manual when no command is given and rejects
// anything that is not a command.
func rootAction(c *cli.Context) error {
	st := getState(c)
	if !c.Args().Present() {
		st.out.Message(manual)
		return nil
	}
	st.fail(msgInvalidArgument + c.Args().First())
	return nil
}

// fail writes an error message in the console format.
func (st *state) fail(msg string) {
	fmt.Fprintf(st.errOut, "\nError: %s\n\n", msg)
}

// checkArgs reports whether exactly n arguments were supplied.
func (st *state) checkArgs(c *cli.Context, n int) bool {
	if c.NArg() != n {
		st.fail(msgArgCount)
		return false
	}
	return true
}

// module resolves a module by name, reporting unknown names.
func (st *state) module(name string) (haxxor.Module, bool) {
	m, found, err := haxxor.ByName(name)
	if err != nil || !found {
		st.log.Debug("module lookup failed", "name", name, "error", err)
		st.fail(msgInvalidModule)
		return nil, false
	}
	return m, true
}

package command

import (
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/haxxor"
	"github.com/zoobzio/haxxor/internal/output"
)

// manual is the console help text.
const manual = `
Haxxor :: Help Manual


encrypt <module> <text>
    - Encrypts the passed text using the specified module

decrypt <module> <hash>
    - Decrypts the passed hash using the specified module

cycle <hash>
    - Cycles the hash through all possible decryptable modules

validate <module> <text> <hash>
    - Validates that the passed text matches the hash

list
    - Returns a list of all possible encryption modules

version
    - Returns the current version of Haxxor

shell
    - Starts an interactive session that transforms every line entered

help
    - Returns this help text


In all cases, the hash can optionally include the module tag.
`

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Returns a list of all possible encryption modules",
		Action: func(c *cli.Context) error {
			return getState(c).out.Print(output.NewModuleList(haxxor.Modules()))
		},
	}
}

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Returns the current version of Haxxor",
		Action: func(c *cli.Context) error {
			return getState(c).out.Print(output.VersionResult{Name: "Haxxor", Version: Version})
		},
	}
}

// HelpCommand returns the help command.
func HelpCommand() *cli.Command {
	return &cli.Command{
		Name:  "help",
		Usage: "Returns the help text",
		Action: func(c *cli.Context) error {
			getState(c).out.Message(manual)
			return nil
		},
	}
}

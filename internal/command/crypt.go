package command

import (
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/haxxor"
	"github.com/zoobzio/haxxor/internal/output"
)

// EncryptCommand returns the encrypt command.
func EncryptCommand() *cli.Command {
	return &cli.Command{
		Name:            "encrypt",
		Usage:           "Encrypts the passed text using the specified module",
		ArgsUsage:       "<module> <text>",
		SkipFlagParsing: true,
		Action:          runEncrypt,
	}
}

// DecryptCommand returns the decrypt command.
func DecryptCommand() *cli.Command {
	return &cli.Command{
		Name:            "decrypt",
		Usage:           "Decrypts the passed hash using the specified module",
		ArgsUsage:       "<module> <hash>",
		SkipFlagParsing: true,
		Action:          runDecrypt,
	}
}

// ValidateCommand returns the validate command.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:            "validate",
		Usage:           "Validates that the passed text matches the hash",
		ArgsUsage:       "<module> <text> <hash>",
		SkipFlagParsing: true,
		Action:          runValidate,
	}
}

func runEncrypt(c *cli.Context) error {
	st := getState(c)
	if !st.checkArgs(c, 2) {
		return nil
	}
	m, ok := st.module(c.Args().Get(0))
	if !ok {
		return nil
	}

	hash, err := m.Encrypt(c.Args().Get(1), st.cfg.IncludeTag)
	if err != nil {
		st.fail(err.Error())
		return nil
	}
	st.log.Debug("encrypted", "module", m.Tag(), "hash", haxxor.MaskHash(hash))

	return st.out.Print(output.HashResult{Module: m.Tag(), Hash: hash})
}

func runDecrypt(c *cli.Context) error {
	st := getState(c)
	if !st.checkArgs(c, 2) {
		return nil
	}
	m, ok := st.module(c.Args().Get(0))
	if !ok {
		return nil
	}

	if !m.Reversible() {
		st.out.Message(msgNotReversible)
		return nil
	}

	hash := c.Args().Get(1)
	plain, err := m.Decrypt(hash)
	if err != nil {
		st.log.Debug("decrypt failed", "module", m.Tag(), "hash", haxxor.MaskHash(hash), "error", err)
		st.fail(err.Error())
		return nil
	}

	return st.out.Print(output.PlainResult{Module: m.Tag(), Plaintext: plain})
}

func runValidate(c *cli.Context) error {
	st := getState(c)
	if !st.checkArgs(c, 3) {
		return nil
	}
	m, ok := st.module(c.Args().Get(0))
	if !ok {
		return nil
	}

	valid, err := m.Validate(c.Args().Get(1), c.Args().Get(2))
	if err != nil {
		st.fail(err.Error())
		return nil
	}

	return st.out.Print(output.ValidateResult{Module: m.Tag(), Valid: valid})
}

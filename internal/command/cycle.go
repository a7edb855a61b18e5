package command

import (
	"github.com/urfave/cli/v2"

	"github.com/zoobzio/haxxor"
	"github.com/zoobzio/haxxor/internal/output"
)

// CycleCommand returns the cycle command.
func CycleCommand() *cli.Command {
	return &cli.Command{
		Name:            "cycle",
		Usage:           "Cycles the hash through all possible decryptable modules",
		ArgsUsage:       "<hash>",
		SkipFlagParsing: true,
		Action:          runCycle,
	}
}

func runCycle(c *cli.Context) error {
	st := getState(c)
	if !st.checkArgs(c, 1) {
		return nil
	}

	hash := c.Args().First()
	attempts, err := haxxor.Cycle(hash)
	if err != nil {
		st.fail(err.Error())
		return nil
	}

	for _, at := range attempts {
		if at.Err != nil {
			st.log.Debug("cycle attempt failed", "module", at.Algorithm.String(), "error", at.Err)
		}
	}

	// Structured output always carries every attempt.
	if attempts.Empty() && !st.out.Structured() {
		st.out.Message(msgNothingRecovered)
		return nil
	}

	return st.out.Print(output.NewCycleResult(attempts))
}

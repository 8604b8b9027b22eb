package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/openucx/collscore/score"
)

func newCmdParse() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "parse",
		Short:    "Parse a selection string and print the resulting map",
		ArgsName: "selection-string",
	}
	teamSizeFlag := cmd.Flags.Uint("team-size", 0, "Team size, for team-size-relative ranges (reserved, currently unused)")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("parse takes one selection-string argument, but got %v", argv)
		}
		m, err := score.AllocFromStr(argv[0], uint32(*teamSizeFlag))
		if err != nil {
			return err
		}
		return m.Dump(env.Stdout)
	})
	return cmd
}

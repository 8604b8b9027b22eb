package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/openucx/collscore/score"
)

func newCmdMerge() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "merge",
		Short:    "Merge two score-map snapshots and print the result",
		ArgsName: "a.snap b.snap",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("merge takes a.snap b.snap, but got %v", argv)
		}
		a, err := score.LoadFromPath(argv[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", argv[0], err)
		}
		b, err := score.LoadFromPath(argv[1])
		if err != nil {
			return fmt.Errorf("loading %s: %w", argv[1], err)
		}
		merged, err := score.Merge(a, b, true)
		if err != nil {
			return err
		}
		return merged.Dump(env.Stdout)
	})
	return cmd
}

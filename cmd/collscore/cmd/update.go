package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/openucx/collscore/score"
)

func newCmdUpdate() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "update",
		Short:    "Overlay a selection string onto a score-map snapshot and print the result",
		ArgsName: "dest.snap selection-string",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("update takes dest.snap selection-string, but got %v", argv)
		}
		dest, err := score.LoadFromPath(argv[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", argv[0], err)
		}
		if err := score.UpdateFromStr(dest, argv[1], 0, nil, nil); err != nil {
			return err
		}
		return dest.Dump(env.Stdout)
	})
	return cmd
}

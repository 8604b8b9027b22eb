package cmd

import (
	"fmt"
	"strconv"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/openucx/collscore/score"
)

func newCmdResolve() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "resolve",
		Short:    "Resolve the winning implementation for (coll, mem, size) against a snapshot",
		ArgsName: "map.snap coll mem size",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 4 {
			return fmt.Errorf("resolve takes map.snap coll mem size, but got %v", argv)
		}
		m, err := score.LoadFromPath(argv[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", argv[0], err)
		}
		coll, ok := score.ParseColTypeName(argv[1])
		if !ok {
			return fmt.Errorf("unknown collective name %q", argv[1])
		}
		mem, ok := score.ParseMemTypeName(argv[2])
		if !ok {
			return fmt.Errorf("unknown memory kind %q", argv[2])
		}
		size, err := strconv.ParseUint(argv[3], 10, 64)
		if err != nil {
			return fmt.Errorf("size %q is not a decimal integer: %w", argv[3], err)
		}
		init, _, ok, err := m.Resolve(coll, mem, size)
		if err != nil {
			return fmt.Errorf("resolving %s/%s/%d: %w", argv[1], argv[2], size, err)
		}
		if !ok {
			fmt.Fprintln(env.Stdout, "no match")
			return nil
		}
		name := "<unnamed>"
		if init != nil {
			name = init.Name()
		}
		fmt.Fprintln(env.Stdout, name)
		return nil
	})
	return cmd
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"v.io/x/lib/cmdline"

	"github.com/openucx/collscore/score"
)

func newCmdDefault() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "default",
		Short: "Build and print a default score map",
	}
	collFlag := cmd.Flags.String("coll", "", "Comma-separated collective names, or empty for all")
	memFlag := cmd.Flags.String("mem", "", "Comma-separated memory kind names, or empty for all")
	scoreFlag := cmd.Flags.Uint64("score", 1, "Default score to assign")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("default takes no arguments, but got %v", argv)
		}
		collMask, err := parseCollFlag(*collFlag)
		if err != nil {
			return err
		}
		memTypes, err := parseMemFlag(*memFlag)
		if err != nil {
			return err
		}
		m, err := score.BuildDefault(score.NewSimpleTeam(0), score.Score(*scoreFlag), nil, collMask, memTypes)
		if err != nil {
			return err
		}
		return m.Dump(env.Stdout)
	})
	return cmd
}

func parseCollFlag(s string) (score.ColType, error) {
	if s == "" {
		return score.ColTypeAll, nil
	}
	var mask score.ColType
	for _, name := range strings.Split(s, ",") {
		t, ok := score.ParseColTypeName(name)
		if !ok {
			return 0, fmt.Errorf("unknown collective name %q", name)
		}
		mask |= t
	}
	return mask, nil
}

func parseMemFlag(s string) ([]score.MemType, error) {
	if s == "" {
		return nil, nil
	}
	var out []score.MemType
	for _, name := range strings.Split(s, ",") {
		t, ok := score.ParseMemTypeName(name)
		if !ok {
			return nil, fmt.Errorf("unknown memory kind %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

package cmd

import (
	"log"

	"v.io/x/lib/cmdline"
)

// Run parses os.Args and dispatches to one of collscore's subcommands.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "collscore",
			Short:    "Build, parse, merge, update, and resolve score maps",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdDefault(),
				newCmdParse(),
				newCmdMerge(),
				newCmdUpdate(),
				newCmdResolve(),
			},
		})
}

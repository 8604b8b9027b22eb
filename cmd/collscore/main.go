// Command collscore is an operator tool for exercising the score-map
// algebra from the shell: building default maps, parsing selection
// strings, merging or overlaying snapshots, and resolving a single
// (coll, mem, size) lookup against one. It is a diagnostic aid, not part
// of any production selection path.
package main

import (
	"github.com/grailbio/base/grail"

	"github.com/openucx/collscore/cmd/collscore/cmd"
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	cmd.Run()
}

// Nuvalue reads structured values encoded as JSON or YAML and shows them as a
// table, merging the columns of heterogeneous rows. It can also keep values in
// a local stash for later use.
package main

import (
	"os"

	"github.com/myty/nushell/pkg/prog"
	"github.com/myty/nushell/pkg/render"
	"github.com/myty/nushell/pkg/stash"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&stash.Program{}, &render.Program{})))
}

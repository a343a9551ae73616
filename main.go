package main

import (
	"os"

	"github.com/josephlewis42/minish/cmd"
	"github.com/josephlewis42/minish/core"
	"github.com/spf13/afero"
)

func main() {
	// Commands are started as a copy of this program which then replaces
	// itself with the command.
	if core.IsExecChild() {
		os.Exit(core.RunExecChild(afero.NewOsFs(), os.Args, os.Environ(), os.Stdout))
	}

	cmd.Execute()
}

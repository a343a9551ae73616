package core

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// IsExecChild reports whether this process was started by ExecLauncher and
// should call RunExecChild instead of its normal entry point.
func IsExecChild() bool {
	_, ok := os.LookupEnv(ExecChildEnv)
	return ok
}

// ScriptShell runs executable files the kernel doesn't recognize.
const ScriptShell = "/bin/sh"

// RunExecChild replaces the current process with the command in argv,
// searching the PATH in environ if the name has no slash. Executable files
// without a "#!" line are run by ScriptShell, as execvp does. It only returns if
// the command couldn't be started, after printing a diagnostic to stdout; the
// result is the exit status for the child.
func RunExecChild(fsys afero.Fs, argv []string, environ []string, stdout io.Writer) int {
	env := EnvList(environ).Without(ExecChildEnv)

	name := ""
	if len(argv) > 0 {
		name = argv[0]
	}

	path, err := LookPath(fsys, env.Getenv("PATH"), name)
	if err == nil {
		err = unix.Exec(path, argv, env)
	}
	if errors.Is(err, unix.ENOEXEC) {
		err = unix.Exec(ScriptShell, append([]string{"sh", path}, argv[1:]...), env)
	}

	fmt.Fprintf(stdout, "Exec error: %s: %v\n", name, err)
	return 1
}

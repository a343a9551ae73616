package core

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/josephlewis42/minish/core/shell"
)

// ExecChildEnv marks a process started by ExecLauncher. Its value is ignored.
const ExecChildEnv = "MINISH_EXEC_CHILD"

// Child describes a child process that has terminated.
type Child struct {
	Pid      int
	ExitCode int
}

// Launcher runs a command in a new process and waits for it to finish.
type Launcher interface {
	Launch(args shell.ArgList, stdio IO) (*Child, error)
}

// ExecLauncher runs commands the way fork and exec would: a copy of the
// running program is started, and that copy replaces itself with the command
// (see RunExecChild). Failing to find the command therefore happens inside
// the child, which still gets a pid and an exit status.
type ExecLauncher struct {
	// Self is the executable started for each command. It must call
	// RunExecChild when ExecChildEnv is set.
	Self string

	// Env is the environment passed to commands. If nil, the environment of
	// the current process is used.
	Env []string
}

var _ Launcher = (*ExecLauncher)(nil)

// NewExecLauncher creates a launcher that re-enters the running executable.
func NewExecLauncher() (*ExecLauncher, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	return &ExecLauncher{Self: self}, nil
}

// Launch starts the command and blocks until that specific child exits.
func (l *ExecLauncher) Launch(args shell.ArgList, stdio IO) (*Child, error) {
	env := EnvList(l.Env)
	if env == nil {
		env = os.Environ()
	}

	cmd := &exec.Cmd{
		Path:   l.Self,
		Args:   args.Argv(),
		Env:    env.With(ExecChildEnv, "1"),
		Stdout: stdio.Stdout(),
		Stderr: stdio.Stderr(),
	}

	// Only share real files: exec would otherwise copy the rest of the
	// operator's input into the child.
	if f, ok := stdio.Stdin().(*os.File); ok {
		cmd.Stdin = f
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	pid := cmd.Process.Pid

	var exitErr *exec.ExitError
	if err := cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		// The child was reaped, but copying its output failed.
		return nil, fmt.Errorf("wait for child %d: %w", pid, err)
	}

	return &Child{
		Pid:      pid,
		ExitCode: exitCode(cmd.ProcessState),
	}, nil
}

// exitCode returns the status the child exited with, or 128 plus the signal
// number if it was killed.
func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}

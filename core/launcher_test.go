package core

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/minish/core/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLauncher(t *testing.T) *ExecLauncher {
	t.Helper()

	launcher, err := NewExecLauncher()
	require.NoError(t, err)
	return launcher
}

func TestExecLauncher_Launch(t *testing.T) {
	cases := map[string]struct {
		argv     []string
		env      []string
		exitCode int
		output   string
	}{
		"exit status": {
			argv:     []string{"sh", "-c", "echo hello; exit 3"},
			exitCode: 3,
			output:   "hello\n",
		},
		"arguments": {
			argv:   []string{"echo", "a", "b", "c"},
			output: "a b c\n",
		},
		"absolute path": {
			argv:   []string{"/bin/sh", "-c", "echo $0"},
			output: "/bin/sh\n",
		},
		"stderr": {
			argv:     []string{"sh", "-c", "echo oops 1>&2; exit 1"},
			exitCode: 1,
			output:   "oops\n",
		},
		"killed": {
			argv:     []string{"sh", "-c", "kill -9 $$"},
			exitCode: 137,
		},
		"marker removed": {
			argv:   []string{"sh", "-c", "echo ${" + ExecChildEnv + ":-unset}"},
			output: "unset\n",
		},
		"custom env": {
			argv:   []string{"sh", "-c", "echo $GREETING"},
			env:    []string{"PATH=" + os.Getenv("PATH"), "GREETING=hi"},
			output: "hi\n",
		},
		"not found": {
			argv:     []string{"minish-no-such-command", "arg"},
			exitCode: 1,
			output:   "Exec error: minish-no-such-command: " + ErrNotFound.Error() + "\n",
		},
		"relative path not found": {
			argv:     []string{"./minish-no-such-command"},
			exitCode: 1,
			output:   "Exec error: ./minish-no-such-command: " + ErrNotFound.Error() + "\n",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			launcher := newTestLauncher(t)
			launcher.Env = tc.env

			out := &bytes.Buffer{}
			child, err := launcher.Launch(shell.NewArgList(tc.argv...), NewIOAdapter(nil, out, out))
			require.NoError(t, err)

			assert.Greater(t, child.Pid, 0)
			assert.NotEqual(t, os.Getpid(), child.Pid)
			assert.Equal(t, tc.exitCode, child.ExitCode)
			assert.Equal(t, tc.output, out.String())
		})
	}
}

func TestExecLauncher_scriptWithoutInterpreter(t *testing.T) {
	script := filepath.Join(t.TempDir(), "greet")
	require.NoError(t, os.WriteFile(script, []byte("echo hi $1\nexit 3\n"), 0755))

	out := &bytes.Buffer{}
	child, err := newTestLauncher(t).Launch(shell.NewArgList(script, "there"), NewIOAdapter(nil, out, out))
	require.NoError(t, err)

	assert.Equal(t, 3, child.ExitCode)
	assert.Equal(t, "hi there\n", out.String())
}

func TestExecLauncher_distinctChildren(t *testing.T) {
	launcher := newTestLauncher(t)
	stdio := NewIOAdapter(nil, io.Discard, io.Discard)

	first, err := launcher.Launch(shell.NewArgList("true"), stdio)
	require.NoError(t, err)
	second, err := launcher.Launch(shell.NewArgList("false"), stdio)
	require.NoError(t, err)

	assert.NotEqual(t, first.Pid, second.Pid)
	assert.Equal(t, 0, first.ExitCode)
	assert.Equal(t, 1, second.ExitCode)
}

func TestExecLauncher_keepsOperatorInput(t *testing.T) {
	launcher := newTestLauncher(t)
	stdin := strings.NewReader("next line\n")

	out := &bytes.Buffer{}
	child, err := launcher.Launch(shell.NewArgList("cat"), NewIOAdapter(stdin, out, out))
	require.NoError(t, err)
	assert.Equal(t, 0, child.ExitCode)
	assert.Empty(t, out.String())

	rest, err := io.ReadAll(stdin)
	require.NoError(t, err)
	assert.Equal(t, "next line\n", string(rest))
}

func TestExecLauncher_spawnFailure(t *testing.T) {
	launcher := &ExecLauncher{Self: "/nonexistent/minish"}

	child, err := launcher.Launch(shell.NewArgList("true"), NewIOAdapter(nil, nil, nil))
	assert.ErrorIs(t, err, ErrSpawn)
	assert.Nil(t, child)
}

package core

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for _, dir := range []string{"/bin", "/usr/bin", "/home/user"} {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}

	files := map[string]fs.FileMode{
		"/bin/ls":           0755,
		"/usr/bin/ls":       0755,
		"/usr/bin/env":      0755,
		"/usr/bin/readme":   0644,
		"/home/user/script": 0700,
		"/home/user/notes":  0600,
		"/usr/bin/shadowed": 0755,
		"/bin/shadowed":     0644,
	}
	for name, mode := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte("#!"), mode))
		require.NoError(t, fsys.Chmod(name, mode))
	}

	return fsys
}

func TestLookPath(t *testing.T) {
	fsys := newTestFs(t)

	cases := map[string]struct {
		path     string
		file     string
		expected string
		err      error
	}{
		"first match wins":        {"/bin:/usr/bin", "ls", "/bin/ls", nil},
		"later directory":         {"/bin:/usr/bin", "env", "/usr/bin/env", nil},
		"skips non-executable":    {"/bin:/usr/bin", "shadowed", "/usr/bin/shadowed", nil},
		"not found":               {"/bin:/usr/bin", "missing", "", ErrNotFound},
		"not executable":          {"/usr/bin", "readme", "", ErrNotFound},
		"empty path":              {"", "ls", "", ErrNotFound},
		"empty name":              {"/bin", "", "", ErrNotFound},
		"directory":               {"/", "bin", "", ErrNotFound},
		"absolute":                {"", "/home/user/script", "/home/user/script", nil},
		"absolute missing":        {"/bin", "/bin/missing", "", ErrNotFound},
		"absolute not executable": {"/bin", "/home/user/notes", "", fs.ErrPermission},
		"absolute directory":      {"/bin", "/home/user", "", fs.ErrPermission},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := LookPath(fsys, tc.path, tc.file)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expected, actual)
		})
	}
}

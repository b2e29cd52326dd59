package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dahankzter/cdrs/errors"
	"github.com/stretchr/testify/require"
)

const usersBody = "../../inspect/testdata/users.jsonc"

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--body", usersBody, "--format", "json", "--log-level", "error"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), `"value": "alice"`)
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "cdrsdump.hcl")
	err := os.WriteFile(cfgFile, []byte(`
duplicate-columns = "error"
metrics-namespace = "dump"
log-level = "error"
`), 0o600)
	require.NoError(t, err)

	var out bytes.Buffer
	err = run([]string{"--config", cfgFile, "--body", usersBody, "--metrics"}, &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "alice")
}

func TestRunInvalidNamespace(t *testing.T) {
	err := run([]string{"--body", usersBody, "--metrics-namespace", "not a name"}, &bytes.Buffer{})
	require.True(t, errors.HasCode(err, errors.InvalidConfiguration))
}

func TestRunRequiresBody(t *testing.T) {
	err := run([]string{"--format", "json"}, &bytes.Buffer{})
	require.Error(t, err)
}

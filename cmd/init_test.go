package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeInit(t *testing.T) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := setupCheckEnv(t)

	out, err := executeInit(t)
	require.NoError(t, err)
	assert.Contains(t, out, configFileName)

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var written map[string]interface{}
	require.NoError(t, yaml.Unmarshal(contents, &written))
	assert.Contains(t, written, "check")
	assert.Contains(t, written, "search")
	assert.Contains(t, written, "log")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := setupCheckEnv(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	_, err := executeInit(t)
	require.Error(t, err)

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/serieslog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against a fresh temp dir holding
// content as the CSV log. It returns stdout and the log path.
func execute(t *testing.T, content string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "log.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(logPath, []byte(content), 0o644))
	}
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--file", logPath, "--config", filepath.Join(dir, "missing.yaml")))
	err := cmd.Execute()
	return out.String(), logPath, err
}

const sampleLog = "2024-01-01 10:00:00,2024-01-01 10:30:00,3\r\n" +
	"2024-01-02 10:00:00,2024-01-02 11:00:00,5\r\n" +
	"2024-01-03 10:00:00,,\r\n"

func TestStatusCmd(t *testing.T) {
	t.Parallel()

	t.Run("reports open session", func(t *testing.T) {
		t.Parallel()
		out, logPath, err := execute(t, sampleLog, "status")
		require.NoError(t, err)
		assert.Contains(t, out, "File: "+logPath)
		assert.Contains(t, out, "Open session since 2024-01-03 10:00:00")
		assert.Contains(t, out, "3 sessions, 2 closed, 8 series, 1h30m0s total, 1 open")
	})

	t.Run("creates a missing log", func(t *testing.T) {
		t.Parallel()
		out, logPath, err := execute(t, "", "status")
		require.NoError(t, err)
		assert.Contains(t, out, "No open session")
		assert.FileExists(t, logPath)
	})
}

func TestListCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints all sessions", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, sampleLog, "list")
		require.NoError(t, err)
		assert.Contains(t, out, "START")
		assert.Contains(t, out, "2024-01-01 10:00:00")
		assert.Contains(t, out, "(open)")
		assert.Contains(t, out, "30m0s")
	})

	t.Run("limit keeps the last rows with their numbers", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, sampleLog, "list", "--limit", "1")
		require.NoError(t, err)
		assert.NotContains(t, out, "2024-01-01 10:00:00")
		assert.Contains(t, out, "2024-01-03 10:00:00")
		assert.Contains(t, out, "3 sessions")
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, sampleLog, "list", "--limit", "-1")
		assert.ErrorIs(t, err, serieslog.ErrValidation)
	})

	t.Run("empty log prints only the summary", func(t *testing.T) {
		t.Parallel()
		out, _, err := execute(t, "", "list")
		require.NoError(t, err)
		assert.Equal(t, "0 sessions, 0 closed, 0 series, 0s total\n", out)
	})
}

func TestExportCmd(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "export.json")
	out, _, err := execute(t, sampleLog, "export", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 3 sessions")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"open": true`))
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logPath := filepath.Join(dir, "from-config.csv")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("file: "+logPath+"\n"), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"status", "--config", cfgPath})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "File: "+logPath)
}

func TestDebugLog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	debugPath := filepath.Join(dir, "debug.log")
	_, _, err := execute(t, sampleLog, "status", "--log", debugPath)
	require.NoError(t, err)

	data, err := os.ReadFile(debugPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolved log file")
}

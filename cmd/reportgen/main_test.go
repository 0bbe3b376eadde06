package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnaoum/minireport/format"
	"github.com/mnaoum/minireport/internal/config"
)

// execute runs reportgen with args in an empty working directory.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvLogLevel, "")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateDefault(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)

	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "✅ Created: "+config.DefaultOutput+"\n", out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, config.DefaultOutput, entries[0].Name())
}

func TestGenerateOutputFlag(t *testing.T) {
	testChdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "report.html")

	out, _, err := execute(t, "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Created: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestGenerateFormatFlag(t *testing.T) {
	testChdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "report.txt")

	_, _, err := execute(t, "-o", path, "--format", "md")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Mini-Project 5.3"))
}

func TestGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	cfgPath := filepath.Join(dir, "reportgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: from-config.md\n"), 0o644))

	out, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "from-config.md")
	assert.FileExists(t, filepath.Join(dir, "from-config.md"))
}

func TestGenerateUnsupported(t *testing.T) {
	testChdir(t, t.TempDir())

	_, _, err := execute(t, "-o", "report.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrUnsupported)
}

func TestGenerateBadFormatName(t *testing.T) {
	testChdir(t, t.TempDir())

	_, _, err := execute(t, "--format", "pdf")
	assert.ErrorIs(t, err, format.ErrUnsupported)
}

func TestGenerateRejectsArgs(t *testing.T) {
	testChdir(t, t.TempDir())

	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestInspectRaw(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	_, _, err := execute(t)
	require.NoError(t, err)

	out, _, err := execute(t, "inspect", "--raw", config.DefaultOutput)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Mini-Project 5.3"))
	assert.Contains(t, out, "## 7. Summary of Improvements (Resubmission)")
	assert.Contains(t, out, "| Method | Approx. Anomaly Rate | Notes |")
}

func TestInspectRendered(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	_, _, err := execute(t)
	require.NoError(t, err)

	out, _, err := execute(t, "inspect", config.DefaultOutput)
	require.NoError(t, err)
	assert.Contains(t, out, "Abstract")
	assert.Contains(t, out, "Isolation Forest")
}

func TestInspectMissingFile(t *testing.T) {
	testChdir(t, t.TempDir())

	_, _, err := execute(t, "inspect", "missing.docx")
	assert.Error(t, err)
}

func TestInspectNeedsFile(t *testing.T) {
	testChdir(t, t.TempDir())

	_, _, err := execute(t, "inspect")
	assert.Error(t, err)
}

func TestInspectTOC(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	_, _, err := execute(t)
	require.NoError(t, err)

	out, _, err := execute(t, "inspect", "--toc", config.DefaultOutput)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "Mini-Project 5.3"))
	assert.Contains(t, lines, "  Abstract")
	assert.Contains(t, lines, "    4.1 One-Class SVM")
	assert.NotContains(t, out, "|")
}

func TestGenerateCSV(t *testing.T) {
	testChdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "tables.csv")

	_, _, err := execute(t, "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Method,Approx. Anomaly Rate,Notes\n"))
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup, mirroring testing.T.Chdir (Go 1.24+).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

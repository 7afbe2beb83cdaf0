package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a one-sheet workbook under t.TempDir().
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellStr("Sheet1", "A1", "name"))
	require.NoError(t, f.SetCellStr("Sheet1", "B1", "score"))
	require.NoError(t, f.SetCellStr("Sheet1", "A2", "alpha"))
	require.NoError(t, f.SetCellStr("Sheet1", "B2", "1"))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRunWritesDocument(t *testing.T) {
	input := writeWorkbook(t)
	output := filepath.Join(t.TempDir(), "out.md")

	stdout, _, err := execute(t, input, "-o", output)
	require.NoError(t, err)
	assert.Equal(t, "转换完成，Markdown 文件保存为 "+output+"\n", stdout)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "## 工作表：Sheet1\n\n"+
		"| name  | score |\n"+
		"|:------|------:|\n"+
		"| alpha |     1 |\n\n", string(got))
}

func TestRunMissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(output, []byte("keep"), 0644))

	stdout, _, err := execute(t, filepath.Join(t.TempDir(), "missing.xlsx"), "-o", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversion failed")
	assert.Empty(t, stdout)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(got))
}

func TestRunTooManyArgs(t *testing.T) {
	_, _, err := execute(t, "a.xlsx", "b.xlsx")
	assert.Error(t, err)
}

func TestRunEnvironment(t *testing.T) {
	input := writeWorkbook(t)
	output := filepath.Join(t.TempDir(), "env.md")
	t.Setenv("SHEET2MD_INPUT", input)
	t.Setenv("SHEET2MD_OUTPUT", output)
	t.Setenv("SHEET2MD_HEADING_PREFIX", "Sheet: ")

	_, _, err := execute(t)
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "## Sheet: Sheet1\n\n")
}

func TestRunConfigFile(t *testing.T) {
	input := writeWorkbook(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "cfg.md")
	cfg := filepath.Join(dir, "sheet2md.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"input: "+input+"\n"+
			"output: "+output+"\n"+
			"heading-prefix: \"\"\n"+
			"verify: true\n"), 0644))

	_, stderr, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Using config file:")

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(got), "## Sheet1\n\n")
}

func TestRunFlagOverridesEnvironment(t *testing.T) {
	input := writeWorkbook(t)
	dir := t.TempDir()
	t.Setenv("SHEET2MD_OUTPUT", filepath.Join(dir, "env.md"))
	flagOutput := filepath.Join(dir, "flag.md")

	_, _, err := execute(t, input, "--output", flagOutput)
	require.NoError(t, err)

	_, err = os.Stat(flagOutput)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "env.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

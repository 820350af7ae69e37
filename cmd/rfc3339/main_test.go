package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseCmd(t *testing.T) {
	out, _, err := run(t, "", "parse", "2023-01-01T23:38:34.120Z", "2023-06")
	require.NoError(t, err)
	assert.Equal(t, `2023-01-01T23:38:34.120Z
  granularity = Nano
  year = 2023
  month = 1
  day = 1
  hour = 23
  minute = 38
  second = 34
  nanosecond = 120000000 (3 digits)
  offset = Z
  unix = 1672616314

2023-06
  granularity = Month
  year = 2023
  month = 6

`, out)
}

func TestParseCmd_Error(t *testing.T) {
	out, _, err := run(t, "", "parse", "2023-01-01", "2023-1-01")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 timestamps failed to parse", err.Error())
	assert.Contains(t, out, `parse "2023-1-01": column 7: lexical error`)
}

func TestScanCmd_Stdin(t *testing.T) {
	out, errOut, err := run(t, "2023\n2023-02-29T10:00:00+01:00\n", "scan", "--summary")
	require.NoError(t, err)
	assert.Equal(t, "1\tok\tYear\t2023\n2\tok\tSecond\t2023-02-29T10:00:00+01:00\n", out)
	assert.Contains(t, errOut, "ok: 2\n")
}

func TestScanCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts.txt")
	require.NoError(t, os.WriteFile(path, []byte("2023-01-01\n2023-01-01T\n"), 0o644))

	out, _, err := run(t, "", "scan", path)
	require.NoError(t, err, "scan without --fail should succeed")
	assert.Contains(t, out, "2\terror\tstructural\t12\t")

	_, _, err = run(t, "", "scan", "--fail", path)
	require.Error(t, err)
	assert.Equal(t, "1 of 2 lines failed to parse", err.Error())
}

func TestScanCmd_MissingFile(t *testing.T) {
	_, _, err := run(t, "", "scan", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiffCmd(t *testing.T) {
	out, _, err := run(t, "", "diff", "2023-01-01T10:15:30Z", "2023-01-01t10:15:30z")
	require.NoError(t, err)
	assert.Equal(t, "timestamps are identical\n", out)

	out, _, err = run(t, "", "diff", "2023-01-01T10:15:30Z", "2023-01-01T10:15:31Z")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "timestamps are different: -A +B\n"), "got %q", out)
	assert.Contains(t, out, "Second")

	_, _, err = run(t, "", "diff", "2023-01-01", "2023-00-01")
	require.Error(t, err)
}

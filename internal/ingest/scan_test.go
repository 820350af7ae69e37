package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ngrash/go-rfc3339/rfc3339"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `2023-01-01T23:38:34Z
2023-01-01T23:38:34.123+01:00

2023-13-01
2023-01-01T10:15Zx
2023-06
not a timestamp
2023-01-01 10:15:30.5z` + "\r\n"

func TestScan(t *testing.T) {
	var out bytes.Buffer
	stats, err := Scan(strings.NewReader(sampleLog), &out)
	require.NoError(t, err, "Scan should not fail on parse errors")

	assert.Equal(t, 8, stats.Lines)
	assert.Equal(t, 1, stats.Blank)
	assert.Equal(t, 4, stats.OK)
	assert.Equal(t, 3, stats.Failed)
	assert.Equal(t, map[string]int{"Second": 1, "Nano": 2, "Month": 1}, stats.ByGranularity)
	assert.Equal(t, map[string]int{"range": 1, "trailing": 1, "lexical": 1}, stats.ByCategory)
	assert.EqualValues(t, out.Len(), stats.Written, "Written should match actual number of report bytes")

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "1\tok\tSecond\t2023-01-01T23:38:34Z", lines[0])
	assert.Equal(t, "2\tok\tNano\t2023-01-01T23:38:34.123+01:00", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "4\terror\trange\t6\t"), "got %q", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "5\terror\ttrailing\t18\t"), "got %q", lines[3])
	assert.Equal(t, "6\tok\tMonth\t2023-06", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "7\terror\tlexical\t1\t"), "got %q", lines[5])
	assert.Equal(t, "8\tok\tNano\t2023-01-01 10:15:30.5z", lines[6])
}

func TestScan_Empty(t *testing.T) {
	var out bytes.Buffer
	stats, err := Scan(strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Zero(t, stats.Lines)
	assert.Zero(t, out.Len())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestScan_WriteError(t *testing.T) {
	stats, err := Scan(strings.NewReader("2023\n2024\n"), failingWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 1, stats.Lines, "Scan should stop at the first write error")
}

func TestStats_WriteTo(t *testing.T) {
	stats, err := Scan(strings.NewReader(sampleLog), &bytes.Buffer{})
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := stats.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, out.Len(), n, "WriteTo count should match actual number of written bytes")
	assert.Equal(t, `lines: 8 (blank 1)
ok: 4
failed: 3
  Month: 1
  Second: 1
  Nano: 2
  lexical errors: 1
  range errors: 1
  trailing errors: 1
`, out.String())
}

func TestDescribe(t *testing.T) {
	dt, err := rfc3339.Parse("2023-04-05T06:07:08.25-03:30")
	require.NoError(t, err)

	r := Describe(dt)
	assert.Equal(t, "Nano", r.Granularity)
	assert.Equal(t, 2023, r.Year)
	require.NotNil(t, r.Month)
	assert.Equal(t, 4, *r.Month)
	require.NotNil(t, r.Second)
	assert.Equal(t, 8, *r.Second)
	require.NotNil(t, r.Nanosecond)
	assert.Equal(t, 250_000_000, *r.Nanosecond)
	assert.Equal(t, 2, r.FractionDigits)
	assert.Equal(t, "-03:30", r.Offset)
	require.NotNil(t, r.Unix)
	assert.EqualValues(t, 1680687428, *r.Unix)
}

func TestDescribe_Coarse(t *testing.T) {
	dt, err := rfc3339.Parse("2023-04")
	require.NoError(t, err)

	r := Describe(dt)
	assert.Equal(t, "Month", r.Granularity)
	require.NotNil(t, r.Month)
	assert.Nil(t, r.Day)
	assert.Nil(t, r.Hour)
	assert.Empty(t, r.Offset)
	assert.Nil(t, r.Unix)
}

func TestCategory(t *testing.T) {
	cases := map[string]string{
		"2023-0":             "structural",
		"2023-0x":            "lexical",
		"2023-13":            "range",
		"2023-01-01T00:00Z!": "trailing",
	}
	for in, want := range cases {
		_, err := rfc3339.Parse(in)
		require.Error(t, err, in)
		assert.Equal(t, want, Category(err), in)
	}
	assert.Equal(t, "other", Category(errors.New("boom")))
}

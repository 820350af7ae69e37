package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, ts string) (*http.Response, map[string]any) {
	t.Helper()
	app := New(Config{})
	req := httptest.NewRequest(http.MethodGet, "/parse?ts="+url.QueryEscape(ts), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestParseHandler(t *testing.T) {
	resp, body := get(t, "2023-01-01T23:38:34.5+01:00")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2023-01-01T23:38:34.5+01:00", body["input"])

	record, ok := body["record"].(map[string]any)
	require.True(t, ok, "record should be an object")
	assert.Equal(t, "Nano", record["granularity"])
	assert.EqualValues(t, 2023, record["year"])
	assert.EqualValues(t, 500_000_000, record["nanosecond"])
	assert.Equal(t, "+01:00", record["offset"])
	assert.EqualValues(t, 1672612714, record["unix"])
}

func TestParseHandler_Date(t *testing.T) {
	resp, body := get(t, "2023-01-01")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	record := body["record"].(map[string]any)
	assert.Equal(t, "Day", record["granularity"])
	assert.NotContains(t, record, "hour")
	assert.NotContains(t, record, "unix")
}

func TestParseHandler_Error(t *testing.T) {
	resp, body := get(t, "2023-02-01T25:00Z")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "range", body["category"])
	assert.EqualValues(t, 12, body["column"])
	assert.Contains(t, body["error"], "hour out of bounds")
}

func TestParseHandler_Missing(t *testing.T) {
	resp, body := get(t, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing ts query parameter", body["error"])
}

func TestScanHandler(t *testing.T) {
	app := New(Config{})
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader("2023\n2023-02-30\nbogus\n"))
	req.Header.Set("Content-Type", "text/plain")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Stats struct {
			Lines  int `json:"lines"`
			OK     int `json:"ok"`
			Failed int `json:"failed"`
		} `json:"stats"`
		Report string `json:"report"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Stats.Lines)
	assert.Equal(t, 2, body.Stats.OK, "a day past the month's length still parses")
	assert.Equal(t, 1, body.Stats.Failed)
	assert.Contains(t, body.Report, "3\terror\tlexical\t1\t")
}

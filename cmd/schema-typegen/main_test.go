package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_URLNotSpecified(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Url not specified")
}

func TestRun_InvalidURLFormat(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--url", "foo")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Invalid URL format")
}

func TestRun_UnknownFlag(t *testing.T) {
	code, _, _ := runCLI(t, "--nope")
	assert.Equal(t, 1, code)
}

func TestRun_EndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{"_links": map[string]interface{}{
			"self":    map[string]interface{}{"href": srv.URL + "/profile"},
			"account": map[string]interface{}{"href": srv.URL + "/account"},
		}})
	})
	mux.HandleFunc("/account", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{
			"title":       "Account",
			"type":        "object",
			"definitions": map[string]interface{}{},
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"title":    "Name",
					"readOnly": false,
					"type":     "string",
				},
			},
		})
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	code, stdout, stderr := runCLI(t, "--url", srv.URL)
	assert.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "type Account struct {")
}

func TestRun_EndToEndRequestFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	code, stdout, stderr := runCLI(t, "--url", srv.URL)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Request failed")
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

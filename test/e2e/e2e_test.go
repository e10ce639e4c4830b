// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-typegen/internal/app"
	"schema-typegen/internal/common/config"
	apperrors "schema-typegen/internal/common/errors"
	"schema-typegen/internal/common/logger"
	"schema-typegen/internal/common/validation"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func runPipeline(t *testing.T, cfg *config.Config, baseURL string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := app.New(cfg, logger.NewTestLogger(t), &out)
	err := a.Run(context.Background(), baseURL)
	return out.String(), err
}

func serveJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func validSchema(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"type":        "object",
		"definitions": map[string]interface{}{},
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"title":    "Name",
				"readOnly": false,
				"type":     "string",
			},
			"createdAt": map[string]interface{}{
				"title":    "Created at",
				"readOnly": true,
				"type":     "string",
				"format":   "date-time",
			},
		},
	}
}

// Scenario A: a profile with a self link and one schema link produces
// generated type text for that schema.
func TestScenarioA_GeneratesTypeText(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, map[string]interface{}{"_links": map[string]interface{}{
			"self": map[string]interface{}{"href": srv.URL + "/profile"},
			"a":    map[string]interface{}{"href": srv.URL + "/a"},
		}})
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/schema+json", r.Header.Get("Accept"))
		serveJSON(t, w, validSchema("A"))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	out, err := runPipeline(t, loadConfig(t), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "type A struct {")
	assert.Contains(t, out, "CreatedAt string `json:\"createdAt\"`")
}

// Scenario B: a null _links field is a schema error.
func TestScenarioB_NullLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, map[string]interface{}{"_links": nil})
	}))
	t.Cleanup(srv.Close)

	out, err := runPipeline(t, loadConfig(t), srv.URL)
	require.Error(t, err)
	assert.Equal(t, "Schema error", apperrors.UserMessage(err))
	assert.Empty(t, out)
}

// Scenario C: one follow-up link returning 500 fails the whole batch.
func TestScenarioC_FollowUpFailure(t *testing.T) {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, map[string]interface{}{"_links": map[string]interface{}{
			"self": map[string]interface{}{"href": srv.URL + "/profile"},
			"a":    map[string]interface{}{"href": srv.URL + "/a"},
			"b":    map[string]interface{}{"href": srv.URL + "/b"},
		}})
	})
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		serveJSON(t, w, validSchema("A"))
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	out, err := runPipeline(t, loadConfig(t), srv.URL)
	require.Error(t, err)
	assert.Equal(t, "Some requests failed", apperrors.UserMessage(err))
	assert.Empty(t, out)
}

// Scenarios D and E exercise the flag layer in the cmd package tests; here we
// pin the URL validation the entry point relies on.
func TestScenarioE_URLValidation(t *testing.T) {
	assert.False(t, validation.IsURL("foo"))
	assert.False(t, validation.IsURL(""))
	assert.True(t, validation.IsURL("http://x/"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := loadConfig(t)
	assert.Equal(t, 30000, cfg.HTTP.Timeout)
	assert.Equal(t, "Schema", cfg.Output.DefaultName)
	assert.False(t, cfg.Output.PrintAll)
	assert.Equal(t, "info", cfg.Logging.Level)
}

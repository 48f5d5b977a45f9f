package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkcli/internal/config"
	"rkcli/pkg/contracts"
)

func doRouted(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(config.Default(), &fakeStatsService{}, testLogger())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := doRouted(t, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["uptime"])
}

func TestRouter_Version(t *testing.T) {
	rec := doRouted(t, "/api/version")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, contracts.Version, body["version"])
}

func TestRouter_Metrics(t *testing.T) {
	rec := doRouted(t, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestRouter_Stats(t *testing.T) {
	rec := doRouted(t, "/api/stats?file=export.csv")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	rec := doRouted(t, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_AssignsRequestID(t *testing.T) {
	rec := doRouted(t, "/healthz")

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSDefaultsAllowAnyOrigin(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	req := httpGet(t, "/api/venues")
	req.Header.Set("Origin", "http://anything.example")
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://anything.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedToFrontendURL(t *testing.T) {
	app := newTestApplication(t)
	app.config.frontendURL = "http://festivo.example"
	mux := app.mount()

	req := httpGet(t, "/api/venues")
	req.Header.Set("Origin", "http://festivo.example")
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://festivo.example", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httpGet(t, "/api/venues")
	req.Header.Set("Origin", "http://evil.example")
	rr = executeRequest(req, mux)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

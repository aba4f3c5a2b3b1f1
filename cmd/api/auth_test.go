package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorLoginSetsSessionCookie(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	cookie := loginOperator(t, mux)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	// The cookie backs a real server-side session.
	session, err := app.store.Sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, cookie.Value, session.Token)
}

func TestOperatorLoginWrongSecret(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	req := jsonRequest(t, http.MethodPost, "/admin/login", map[string]string{
		"user":   testOperatorUser,
		"secret": "not-it",
	})
	rr := executeRequest(req, mux)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestOperatorLoginUnknownUser(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	req := jsonRequest(t, http.MethodPost, "/admin/login", map[string]string{
		"user":   "intruder",
		"secret": testOperatorSecret,
	})
	rr := executeRequest(req, mux)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOperatorLoginMissingFields(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	req := jsonRequest(t, http.MethodPost, "/admin/login", map[string]string{"user": testOperatorUser})
	rr := executeRequest(req, mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOperatorLogoutInvalidatesSession(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	cookie := loginOperator(t, mux)

	req := httpRequest(t, http.MethodPost, "/admin/logout")
	req.AddCookie(cookie)
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	// The old cookie no longer opens the admin surface.
	req = httpGet(t, "/admin/pending-venues")
	req.AddCookie(cookie)
	rr = executeRequest(req, mux)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestHealthCheckBehindBasicAuth(t *testing.T) {
	app := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(httpGet(t, "/health"), mux)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))

	req := httpGet(t, "/health")
	req.SetBasicAuth(testBasicUser, testBasicPass)
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var status map[string]string
	decodeData(t, rr, &status)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["env"])
}

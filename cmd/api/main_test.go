package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	assetslocal "festivo/internal/assets/local"
	"festivo/internal/auth"
	"festivo/internal/db"
	"festivo/internal/profanity"
	"festivo/internal/ratelimiter"
	"festivo/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testOperatorUser   = "admin"
	testOperatorSecret = "open-sesame"
	testBasicUser      = "metrics"
	testBasicPass      = "metrics-pass"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	database, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	staticDir := t.TempDir()
	assetStore, err := assetslocal.NewStore(filepath.Join(staticDir, "venues"), "venues")
	require.NoError(t, err)

	hash, err := auth.HashPassword(testOperatorSecret)
	require.NoError(t, err)

	return &application{
		config: config{
			addr:   "localhost:8080",
			env:    "test",
			apiURL: "localhost:8080",
			assets: assetsConfig{
				backend: "local",
				dir:     staticDir,
				folder:  "venues",
			},
			session: sessionConfig{
				user:       testOperatorUser,
				secretHash: hash,
				ttl:        time.Hour,
			},
			auth: authConfig{
				basic: basicConfig{user: testBasicUser, pass: testBasicPass},
			},
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 100,
				TimeFrame:            time.Minute,
				Enabled:              false,
			},
		},
		store:         store.NewStorage(database),
		logger:        zap.NewNop().Sugar(),
		assets:        assetStore,
		filter:        profanity.Default(),
		authenticator: auth.NewOperatorAuthenticator(testOperatorUser, hash),
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(100, time.Minute),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func httpRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, target, nil)
}

func httpGet(t *testing.T, target string) *http.Request {
	return httpRequest(t, http.MethodGet, target)
}

// decodeData unmarshals the "data" field of a response envelope.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

// loginOperator performs a real login and returns the session cookie.
func loginOperator(t *testing.T, mux http.Handler) *http.Cookie {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/admin/login", map[string]string{
		"user":   testOperatorUser,
		"secret": testOperatorSecret,
	})
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func createTestVenue(t *testing.T, app *application, name string) *store.Venue {
	t.Helper()

	venue := &store.Venue{
		Name:    name,
		Address: "Av. Siempre Viva 742",
		Phone:   "+591 70000000",
		MapURL:  "https://maps.example/v",
		Images:  []string{"venues/a.jpg"},
	}
	require.NoError(t, app.store.Venues.Create(context.Background(), venue))
	return venue
}

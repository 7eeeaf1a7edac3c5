package config

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.True(t, reachable(srv.URL), "running server should be reachable")
	assert.False(t, reachable("http://127.0.0.1:1"), "closed port should not be reachable")
	assert.False(t, reachable("://bad"), "unparseable URL should not be reachable")
}

func TestDetectReachableBaseURLKeepsWorkingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.Equal(t, srv.URL, detectReachableBaseURL(srv.URL))
}

func TestDetectReachableBaseURLFallsBackToLocalhost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port := u.Port()

	// A compose-style hostname that resolves nowhere; same port as the
	// running server so the localhost permutation can pick it up.
	dead := "http://ontoflow-backend.invalid:" + port
	assert.Equal(t, "http://localhost:"+port, detectReachableBaseURL(dead))
}

// internal/common/relay/relay_test.go
package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_PostsMultipartForm(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		received = map[string]string{
			"access_key": r.FormValue("access_key"),
			"name":       r.FormValue("name"),
			"email":      r.FormValue("email"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "the-key", 5*time.Second)
	err := c.Submit(context.Background(), map[string]string{
		"name":  "Priya Sharma",
		"email": "priya@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "the-key", received["access_key"])
	assert.Equal(t, "Priya Sharma", received["name"])
	assert.Equal(t, "priya@example.com", received["email"])
}

func TestSubmit_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rejected", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 5*time.Second)
	err := c.Submit(context.Background(), map[string]string{"name": "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSubmit_DisabledWithoutURL(t *testing.T) {
	c := NewClient("", "k", 5*time.Second)

	assert.False(t, c.Enabled())
	assert.Error(t, c.Submit(context.Background(), nil))
}

func TestSubmit_CreatedIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 5*time.Second)

	assert.NoError(t, c.Submit(context.Background(), map[string]string{"name": "x"}))
}

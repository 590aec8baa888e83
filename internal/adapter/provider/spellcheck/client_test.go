package spellcheck

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(url string) *Client {
	c := NewClient(url, 2*time.Second, newTestLogger())
	c.retryDelay = time.Millisecond
	return c
}

func TestClient_Check_Valid(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check", r.URL.Path)
		assert.Equal(t, "σπίτια", r.URL.Query().Get("word"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_valid": true}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Check(context.Background(), " σπίτια ")
	require.NoError(t, err)
	assert.True(t, got.IsValid)
}

func TestClient_Check_Invalid(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"is_valid": false}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL+"/").Check(context.Background(), "σπλίτρο")
	require.NoError(t, err)
	assert.False(t, got.IsValid)
}

func TestClient_Check_BlankSkipsRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Check(context.Background(), "  ")
	require.NoError(t, err)
	assert.False(t, got.IsValid)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_Check_RetryOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"is_valid": true}`))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL).Check(context.Background(), "σπίτι")
	require.NoError(t, err)
	assert.True(t, got.IsValid)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Check_PersistentServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Check(context.Background(), "σπίτι")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Check_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Check(context.Background(), "σπίτι")
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Check_BadJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed":     `{"is_valid":`,
		"missing field": `{"valid": true}`,
		"wrong type":    `{"is_valid": "yes"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).Check(context.Background(), "σπίτι")
			assert.Error(t, err)
		})
	}
}

func TestClient_Check_NetworkErrorRetriedThenFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Check(context.Background(), "σπίτι")
	assert.Error(t, err)
}

func TestClient_Check_CancelledContext(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL).Check(ctx, "σπίτι")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotoapp/roto-core/internal/types"
)

const testDeviceID = "0b41b2e6-9b62-4c2e-9a3e-111111111111"

func TestPostSendsTraceHeaders(t *testing.T) {
	var gotContentType, gotRequestID, gotDeviceID string
	var gotBody types.GenerateRecipePayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotDeviceID = r.Header.Get("X-Device-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testDeviceID, 5*time.Second)
	payload := types.NewGenerateRecipePayload([]string{"eggs", "flour"}, nil, "")

	var out map[string]bool
	err := c.Post(context.Background(), "/generate", payload, &out)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, testDeviceID, gotDeviceID)
	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err, "X-Request-ID should be a UUID")
	assert.Equal(t, []string{"eggs", "flour"}, gotBody.Ingredients)
	assert.Equal(t, []string{}, gotBody.Dislikes)
	assert.True(t, out["ok"])
}

func TestPostFreshRequestIDPerCall(t *testing.T) {
	seen := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[r.Header.Get("X-Request-ID")] = true
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testDeviceID, 5*time.Second)
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Post(context.Background(), "/generate", struct{}{}, nil))
	}
	assert.Len(t, seen, 3)
}

func TestPostServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, testDeviceID, 5*time.Second)
	err := c.Post(context.Background(), "/generate", struct{}{}, nil)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 500, serverErr.StatusCode)
}

func TestPostDecodingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recipes": "wrong shape"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testDeviceID, 5*time.Second)
	var out types.RecipeResponse
	err := c.Post(context.Background(), "/generate", struct{}{}, &out)
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestPostInvalidURL(t *testing.T) {
	c := New("://nonsense", testDeviceID, 5*time.Second)
	err := c.Post(context.Background(), "/generate", struct{}{}, nil)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestPostUnserializableBody(t *testing.T) {
	c := New("http://localhost:1", testDeviceID, 5*time.Second)
	err := c.Post(context.Background(), "/generate", func() {}, nil)

	var unknownErr *UnknownError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestPostTransportFailure(t *testing.T) {
	// Nothing listens here; the dial fails.
	c := New("http://127.0.0.1:1", testDeviceID, 500*time.Millisecond)
	err := c.Post(context.Background(), "/generate", struct{}{}, nil)

	var unknownErr *UnknownError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestPostContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := New(srv.URL, testDeviceID, 5*time.Second)

	done := make(chan error, 1)
	go func() {
		done <- c.Post(ctx, "/generate", struct{}{}, nil)
	}()
	cancel()

	err := <-done
	var unknownErr *UnknownError
	require.ErrorAs(t, err, &unknownErr)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestUserMessagePerKind(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Contains(t, UserMessage(ErrInvalidURL), "misconfigured")
	assert.Contains(t, UserMessage(ErrDecoding), "unexpected")
	assert.Contains(t, UserMessage(&ServerError{StatusCode: 503}), "503")
	assert.Contains(t, UserMessage(&UnknownError{Cause: errors.New("dial tcp")}), "connection")
}

package figma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/espalier/pkg/domain"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return data, nil
}

func (m *memoryCache) Set(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New("", "")
	assert.ErrorIs(t, err, domain.ErrMissingAuth)
}

func TestGetFileSendsTokenHeader(t *testing.T) {
	var gotToken, gotDepth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Figma-Token")
		gotDepth = r.URL.Query().Get("depth")
		assert.Equal(t, "/files/abc", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		json.NewEncoder(w).Encode(map[string]any{"name": "Demo"})
	}))
	defer server.Close()

	client, err := New("token-123", "", WithBaseURL(server.URL))
	require.NoError(t, err)

	doc, err := client.GetFile(context.Background(), "abc", 2)
	require.NoError(t, err)
	assert.Equal(t, "Demo", doc["name"])
	assert.Equal(t, "token-123", gotToken)
	assert.Equal(t, "2", gotDepth)
}

func TestOAuthTokenWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer oauth-456", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Figma-Token"))
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	client, err := New("key", "oauth-456", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.GetFile(context.Background(), "abc", 0)
	require.NoError(t, err)
}

func TestGetNodesJoinsIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/abc/nodes", r.URL.Path)
		assert.Equal(t, "1:1,2:2", r.URL.Query().Get("ids"))
		json.NewEncoder(w).Encode(map[string]any{"nodes": map[string]any{}})
	}))
	defer server.Close()

	client, err := New("token", "", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.GetNodes(context.Background(), "abc", []string{"1:1", "2:2"}, 0)
	require.NoError(t, err)
}

func TestAPIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"status": 404, "err": "Not found"})
	}))
	defer server.Close()

	client, err := New("token", "", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.GetFile(context.Background(), "missing", 0)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestGetFileUsesCache(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"name": "Cached"})
	}))
	defer server.Close()

	client, err := New("token", "", WithBaseURL(server.URL), WithCache(newMemoryCache()))
	require.NoError(t, err)

	first, err := client.GetFile(context.Background(), "abc", 0)
	require.NoError(t, err)
	second, err := client.GetFile(context.Background(), "abc", 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetImageURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/abc", r.URL.Path)
		assert.Equal(t, "png", r.URL.Query().Get("format"))
		assert.Equal(t, "2", r.URL.Query().Get("scale"))
		json.NewEncoder(w).Encode(map[string]any{
			"images": map[string]any{"1:1": "https://cdn.example.com/a.png"},
		})
	}))
	defer server.Close()

	client, err := New("token", "", WithBaseURL(server.URL))
	require.NoError(t, err)

	urls, err := client.GetImageURLs(context.Background(), "abc", []string{"1:1"}, "png", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1:1": "https://cdn.example.com/a.png"}, urls)
}

func TestGetImageFillURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/abc/images", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"meta": map[string]any{"images": map[string]any{"ref1": "https://cdn.example.com/f.png"}},
		})
	}))
	defer server.Close()

	client, err := New("token", "", WithBaseURL(server.URL))
	require.NoError(t, err)

	urls, err := client.GetImageFillURLs(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ref1": "https://cdn.example.com/f.png"}, urls)
}

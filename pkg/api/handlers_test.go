package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrseed/hrseed/pkg/codec"
	"github.com/hrseed/hrseed/pkg/registry"
)

func testRouter(t *testing.T, cfg ServerConfig) http.Handler {
	t.Helper()

	c, err := codec.New(codec.WithWords([]string{"ant", "bee", "cat", "dog"}))
	require.NoError(t, err)

	reg, err := registry.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })

	return NewRouter(NewServer(c, reg, cfg, nil))
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestEncodeDecodeEndpoints(t *testing.T) {
	router := testRouter(t, ServerConfig{})

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/encode", EncodeRequest{Seed: "A"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	var encoded EncodeResponse
	requireData(t, resp, &encoded)
	assert.Equal(t, []string{"ant", "bee", "ant", "ant", "bee"}, encoded.Words)
	assert.Equal(t, 2, encoded.ChunkSize)

	rec, resp = doJSON(t, router, http.MethodPost, "/api/v1/decode", DecodeRequest{Words: encoded.Words}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	var decoded DecodeResponse
	requireData(t, resp, &decoded)
	assert.Equal(t, "A", decoded.Seed)
}

func TestEncodeRejectsNonASCII(t *testing.T) {
	router := testRouter(t, ServerConfig{})

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/encode", EncodeRequest{Seed: "café"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "non-ASCII")
}

func TestDecodeRejectsUnknownWord(t *testing.T) {
	router := testRouter(t, ServerConfig{})

	rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/decode",
		DecodeRequest{Words: []string{"ant", "not-a-real-word"}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "not in the wordlist")
}

func TestWordlistEndpoints(t *testing.T) {
	router := testRouter(t, ServerConfig{})

	words := []string{"red", "blue", "green", "gold"}
	rec, resp := doJSON(t, router, http.MethodPut, "/api/v1/wordlists/colors", WordlistRequest{Words: words}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	// Encode against the registered list.
	rec, resp = doJSON(t, router, http.MethodPost, "/api/v1/encode",
		EncodeRequest{Seed: "A", Wordlist: "colors"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var encoded EncodeResponse
	requireData(t, resp, &encoded)
	assert.Equal(t, []string{"red", "blue", "red", "red", "blue"}, encoded.Words)

	rec, resp = doJSON(t, router, http.MethodGet, "/api/v1/wordlists", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	requireData(t, resp, &names)
	assert.Equal(t, []string{"colors"}, names)

	rec, resp = doJSON(t, router, http.MethodGet, "/api/v1/wordlists/colors", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got WordlistResponse
	requireData(t, resp, &got)
	assert.Equal(t, words, got.Words)
	assert.Equal(t, 2, got.ChunkSize)

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/v1/wordlists/colors", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/wordlists/colors", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownWordlistIs404(t *testing.T) {
	router := testRouter(t, ServerConfig{})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/encode",
		EncodeRequest{Seed: "A", Wordlist: "nope"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIKeyMiddleware(t *testing.T) {
	router := testRouter(t, ServerConfig{APIKey: "secret"})

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/encode", EncodeRequest{Seed: "A"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/encode", EncodeRequest{Seed: "A"},
		map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/encode", EncodeRequest{Seed: "A"},
		map[string]string{"X-API-Key": "secret"})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays open.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	hrec := httptest.NewRecorder()
	router.ServeHTTP(hrec, req)
	assert.Equal(t, http.StatusOK, hrec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := testRouter(t, ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// A caller-supplied ID is echoed back.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "caller-id", rec.Header().Get("X-Request-ID"))
}

// requireData re-marshals the generic Data field into a typed value.
func requireData(t *testing.T, resp APIResponse, out interface{}) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

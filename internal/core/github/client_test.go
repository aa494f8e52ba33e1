package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Client{APIBase: srv.URL, HTTP: srv.Client()}, srv
}

func TestRequestSendsAuthHeaders(t *testing.T) {
	var got http.Header
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"login":"acme"}`))
	})
	defer srv.Close()

	err := client.ValidateToken(context.Background(), "tok-123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
	assert.Equal(t, "application/vnd.github+json", got.Get("Accept"))
	assert.Equal(t, "2022-11-28", got.Get("X-GitHub-Api-Version"))
	assert.Equal(t, "GitPeek/1.0", got.Get("User-Agent"))
}

func TestRequestNonSuccessStatus(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not json", http.StatusUnauthorized)
	})
	defer srv.Close()

	err := client.ValidateToken(context.Background(), "revoked")
	require.Error(t, err)

	var upstream *domain.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}

func TestGetRepository(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widgets", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":             42,
			"name":           "widgets",
			"full_name":      "acme/widgets",
			"html_url":       "https://github.com/acme/widgets",
			"private":        true,
			"default_branch": "main",
		})
	})
	defer srv.Close()

	repo, err := client.GetRepository(context.Background(), "tok", "acme", "widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", repo.FullName)
	assert.True(t, repo.Private)
	assert.Equal(t, "main", repo.DefaultBranch)
}

func TestListDirectoryPreservesUpstreamOrder(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/widgets/contents/cmd/api", r.URL.Path)
		w.Write([]byte(`[
			{"name":"zeta.go","path":"cmd/api/zeta.go","type":"file","size":10},
			{"name":"alpha.go","path":"cmd/api/alpha.go","type":"file","size":20}
		]`))
	})
	defer srv.Close()

	entries, err := client.ListDirectory(context.Background(), "tok", "acme", "widgets", "cmd/api")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "zeta.go", entries[0].Name)
	assert.Equal(t, "alpha.go", entries[1].Name)
}

func TestGetFileRaw(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		// The contents API wraps base64 payloads with newlines.
		w.Write([]byte(`{"content":"aGVsbG8g\nd29ybGQ=","encoding":"base64"}`))
	})
	defer srv.Close()

	content, err := client.GetFileRaw(context.Background(), "tok", "acme", "widgets", "hello.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestGetFileRawUnexpectedEncoding(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"hello world","encoding":"utf-8"}`))
	})
	defer srv.Close()

	_, err := client.GetFileRaw(context.Background(), "tok", "acme", "widgets", "hello.txt")
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}

func TestGetFileRawInvalidBase64(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"!!not base64!!","encoding":"base64"}`))
	})
	defer srv.Close()

	_, err := client.GetFileRaw(context.Background(), "tok", "acme", "widgets", "hello.txt")
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}

func TestGetFileBase64(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"aVZCT1I=\n","encoding":"base64"}`))
	})
	defer srv.Close()

	payload, encoding, err := client.GetFileBase64(context.Background(), "tok", "acme", "widgets", "logo.png")
	require.NoError(t, err)
	assert.Equal(t, "base64", encoding)
	assert.Equal(t, "aVZCT1I=", payload)
}

func TestFetchRawURL(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte("# Widgets\n"))
	})
	defer srv.Close()

	text, err := client.FetchRawURL(context.Background(), srv.URL+"/raw/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# Widgets\n", text)
}

func TestFetchRawURLFailure(t *testing.T) {
	client, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := client.FetchRawURL(context.Background(), srv.URL+"/raw/README.md")
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
}

package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/Tony-ArtZ/git-peek/internal/core/ports"
)

const (
	defaultAPIBase = "https://api.github.com"
	apiVersion     = "2022-11-28"
	acceptJSON     = "application/vnd.github+json"
	userAgent      = "GitPeek/1.0"

	requestTimeout = 10 * time.Second
)

type Client struct {
	APIBase string
	HTTP    *http.Client
}

func NewClient() ports.GitHubClient {
	return &Client{
		APIBase: defaultAPIBase,
		HTTP:    &http.Client{Timeout: requestTimeout},
	}
}

// request is the single authenticated fetch primitive every operation builds
// on. A non-2xx status becomes an UpstreamError carrying the status code and
// the body is discarded unread.
func (c *Client) request(ctx context.Context, rawURL, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptJSON)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}
	return nil
}

func (c *Client) ValidateToken(ctx context.Context, token string) error {
	return c.request(ctx, c.APIBase+"/user", token, nil)
}

func (c *Client) GetRepository(ctx context.Context, token, owner, repo string) (domain.Repo, error) {
	var out domain.Repo
	err := c.request(ctx, fmt.Sprintf("%s/repos/%s/%s", c.APIBase, owner, repo), token, &out)
	return out, err
}

func (c *Client) ListDirectory(ctx context.Context, token, owner, repo, path string) ([]domain.FileEntry, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents", c.APIBase, owner, repo)
	if path != "" {
		u += "/" + escapePath(path)
	}

	var entries []domain.FileEntry
	if err := c.request(ctx, u, token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// contentPayload is the contents-endpoint response for a single file: the
// payload plus its declared encoding.
type contentPayload struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

func (c *Client) getContent(ctx context.Context, token, owner, repo, path string) (contentPayload, error) {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.APIBase, owner, repo, escapePath(path))
	var out contentPayload
	err := c.request(ctx, u, token, &out)
	return out, err
}

func (c *Client) GetFileRaw(ctx context.Context, token, owner, repo, path string) (string, error) {
	payload, err := c.getContent(ctx, token, owner, repo, path)
	if err != nil {
		return "", err
	}
	if payload.Encoding != "base64" {
		return "", fmt.Errorf("%w: unexpected encoding %q", domain.ErrDecodeFailure, payload.Encoding)
	}

	decoded, err := base64.StdEncoding.DecodeString(stripNewlines(payload.Content))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDecodeFailure, err)
	}
	return string(decoded), nil
}

func (c *Client) GetFileBase64(ctx context.Context, token, owner, repo, path string) (string, string, error) {
	payload, err := c.getContent(ctx, token, owner, repo, path)
	if err != nil {
		return "", "", err
	}
	return stripNewlines(payload.Content), payload.Encoding, nil
}

func (c *Client) ListUserRepos(ctx context.Context, token string) ([]domain.Repo, error) {
	var repos []domain.Repo
	u := c.APIBase + "/user/repos?per_page=100&type=all&sort=updated"
	if err := c.request(ctx, u, token, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// FetchRawURL retrieves public raw content (download_url targets) without
// authentication.
func (c *Client) FetchRawURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("raw fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.UpstreamError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("raw fetch: %w", err)
	}
	return string(body), nil
}

// The contents API wraps base64 payloads at 60 columns.
func stripNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}

func escapePath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

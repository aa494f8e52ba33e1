package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedirects struct {
	redirects map[string]domain.Redirect
}

func (f *fakeRedirects) Save(_ context.Context, r domain.Redirect) (domain.Redirect, error) {
	f.redirects[r.ID] = r
	return r, nil
}

func (f *fakeRedirects) GetByID(_ context.Context, id string) (domain.Redirect, error) {
	if r, ok := f.redirects[id]; ok {
		return r, nil
	}
	return domain.Redirect{}, domain.ErrNotFound
}

func (f *fakeRedirects) ListByUser(_ context.Context, userID string) ([]domain.PublishedRepo, error) {
	var out []domain.PublishedRepo
	for _, r := range f.redirects {
		if r.UserID == userID {
			out = append(out, domain.PublishedRepo{ID: r.ID, RepoRef: r.RepoRef, CreatedAt: r.CreatedAt})
		}
	}
	return out, nil
}

func (f *fakeRedirects) Delete(_ context.Context, id, userID string) (bool, error) {
	if r, ok := f.redirects[id]; ok && r.UserID == userID {
		delete(f.redirects, id)
		return true, nil
	}
	return false, nil
}

type fakeAccounts struct {
	tokens map[string]string
	err    error
}

func (f *fakeAccounts) GetAccessToken(_ context.Context, userID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if token, ok := f.tokens[userID]; ok {
		return token, nil
	}
	return "", errors.New("no account")
}

type fakeCache struct {
	mu       sync.Mutex
	values   map[string]string
	counters map[string]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, counters: map[string]int{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeCache) IncrementCounter(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[key]++
	return nil
}

type fakeGitHub struct {
	mu sync.Mutex

	validateErr error

	repo    domain.Repo
	repoErr error

	listing    map[string][]domain.FileEntry
	listingErr error

	rawContent map[string]string
	rawErr     error

	fileRaw    map[string]string
	fileRawErr error

	base64Payload  string
	base64Encoding string
	base64Err      error

	userRepos    []domain.Repo
	userReposErr error

	gotOwner, gotRepo, gotPath string
}

func (f *fakeGitHub) ValidateToken(_ context.Context, _ string) error {
	return f.validateErr
}

func (f *fakeGitHub) GetRepository(_ context.Context, _, owner, repo string) (domain.Repo, error) {
	f.mu.Lock()
	f.gotOwner, f.gotRepo = owner, repo
	f.mu.Unlock()
	return f.repo, f.repoErr
}

func (f *fakeGitHub) ListDirectory(_ context.Context, _, _, _, path string) ([]domain.FileEntry, error) {
	if f.listingErr != nil {
		return nil, f.listingErr
	}
	return f.listing[path], nil
}

func (f *fakeGitHub) GetFileRaw(_ context.Context, _, _, _, path string) (string, error) {
	if f.fileRawErr != nil {
		return "", f.fileRawErr
	}
	if content, ok := f.fileRaw[path]; ok {
		return content, nil
	}
	return "", &domain.UpstreamError{StatusCode: 404, URL: path}
}

func (f *fakeGitHub) GetFileBase64(_ context.Context, _, _, _, path string) (string, string, error) {
	f.mu.Lock()
	f.gotPath = path
	f.mu.Unlock()
	return f.base64Payload, f.base64Encoding, f.base64Err
}

func (f *fakeGitHub) ListUserRepos(_ context.Context, _ string) ([]domain.Repo, error) {
	return f.userRepos, f.userReposErr
}

func (f *fakeGitHub) FetchRawURL(_ context.Context, url string) (string, error) {
	if f.rawErr != nil {
		return "", f.rawErr
	}
	if content, ok := f.rawContent[url]; ok {
		return content, nil
	}
	return "", &domain.UpstreamError{StatusCode: 404, URL: url}
}

func newSnapshotFixture() (*fakeRedirects, *fakeAccounts, *fakeGitHub, *DefaultSnapshotService) {
	redirects := &fakeRedirects{redirects: map[string]domain.Redirect{
		"share-1": {ID: "share-1", RepoRef: "https://github.com/acme/widgets/", UserID: "user-1"},
	}}
	accounts := &fakeAccounts{tokens: map[string]string{"user-1": "tok"}}
	gh := &fakeGitHub{
		repo: domain.Repo{Name: "widgets", FullName: "acme/widgets", HTMLURL: "https://github.com/acme/widgets", DefaultBranch: "main"},
		listing: map[string][]domain.FileEntry{
			"": {
				{Name: "src", Path: "src", Kind: domain.KindDir},
				{Name: "README.md", Path: "README.md", Kind: domain.KindFile, DownloadURL: "https://raw.test/README.md"},
				{Name: "LICENSE", Path: "LICENSE", Kind: domain.KindFile, DownloadURL: "https://raw.test/LICENSE"},
			},
		},
		rawContent: map[string]string{
			"https://raw.test/README.md": "# Widgets",
			"https://raw.test/LICENSE":   "MIT License",
		},
	}
	svc := &DefaultSnapshotService{Redirects: redirects, Accounts: accounts, GitHub: gh}
	return redirects, accounts, gh, svc
}

func TestBuildSnapshotEndToEnd(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()

	snapshot, err := svc.BuildSnapshot(context.Background(), "share-1")
	require.NoError(t, err)

	assert.Equal(t, "acme", gh.gotOwner, "URL form with trailing slash resolves")
	assert.Equal(t, "widgets", gh.gotRepo)
	assert.Equal(t, "acme/widgets", snapshot.Repo.FullName)
	require.Len(t, snapshot.Files, 3)
	assert.Equal(t, "src", snapshot.Files[0].Name, "upstream order kept")
	assert.Equal(t, "# Widgets", snapshot.ReadmeText)
	assert.Equal(t, "MIT License", snapshot.LicenseText)
}

func TestBuildSnapshotRederivesAccessEveryCall(t *testing.T) {
	redirects, accounts, _, svc := newSnapshotFixture()

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	require.NoError(t, err)

	// Revoking the owner's credential must take effect on the very next
	// visit; an earlier successful build grants nothing.
	accounts.tokens = map[string]string{}
	_, err = svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	// Same for the owner deleting the share.
	accounts.tokens = map[string]string{"user-1": "tok"}
	delete(redirects.redirects, "share-1")
	_, err = svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildSnapshotMissingRedirect(t *testing.T) {
	_, _, _, svc := newSnapshotFixture()

	_, err := svc.BuildSnapshot(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildSnapshotNoCredentialIsAccessDenied(t *testing.T) {
	_, accounts, _, svc := newSnapshotFixture()
	accounts.tokens = map[string]string{}

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied, "never NotFound when the owner has no token")
}

func TestBuildSnapshotCredentialStoreErrorIsAccessDenied(t *testing.T) {
	_, accounts, _, svc := newSnapshotFixture()
	accounts.err = errors.New("connection reset")

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBuildSnapshotRevokedTokenIsAccessDenied(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.validateErr = &domain.UpstreamError{StatusCode: 401, URL: "/user"}

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBuildSnapshotMalformedReferenceIsNotFound(t *testing.T) {
	redirects, _, _, svc := newSnapshotFixture()
	redirects.redirects["share-1"] = domain.Redirect{ID: "share-1", RepoRef: "justowner", UserID: "user-1"}

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "malformed reference is indistinguishable from a missing repo")
}

func TestBuildSnapshotListingFailureAbortsWhole(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.listingErr = &domain.UpstreamError{StatusCode: 500, URL: "/contents"}

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "partial snapshots are never returned")
}

func TestBuildSnapshotMetadataFailureAbortsWhole(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.repoErr = &domain.UpstreamError{StatusCode: 404, URL: "/repos"}

	_, err := svc.BuildSnapshot(context.Background(), "share-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildSnapshotSucceedsWithoutReadmeOrLicense(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.listing[""] = []domain.FileEntry{
		{Name: "main.go", Path: "main.go", Kind: domain.KindFile},
	}

	snapshot, err := svc.BuildSnapshot(context.Background(), "share-1")
	require.NoError(t, err)
	assert.Empty(t, snapshot.ReadmeText)
	assert.Empty(t, snapshot.LicenseText)
}

func TestBuildSnapshotEnrichmentFailureSwallowed(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.rawErr = errors.New("raw host down")

	snapshot, err := svc.BuildSnapshot(context.Background(), "share-1")
	require.NoError(t, err, "enrichment failures never fail the snapshot")
	assert.Empty(t, snapshot.ReadmeText)
}

func TestBuildSnapshotMatchesReadmeCaseInsensitively(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.listing[""] = []domain.FileEntry{
		{Name: "ReadMe.TXT", Path: "ReadMe.TXT", Kind: domain.KindFile, DownloadURL: "https://raw.test/README.md"},
	}

	snapshot, err := svc.BuildSnapshot(context.Background(), "share-1")
	require.NoError(t, err)
	assert.Equal(t, "# Widgets", snapshot.ReadmeText)
}

func TestFetchDirectory(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.listing["src"] = []domain.FileEntry{
		{Name: "main.go", Path: "src/main.go", Kind: domain.KindFile},
	}

	entries, err := svc.FetchDirectory(context.Background(), "share-1", "src")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "src/main.go", entries[0].Path)
}

func TestFetchDirectoryDeniedWithoutCredential(t *testing.T) {
	_, accounts, _, svc := newSnapshotFixture()
	accounts.tokens = map[string]string{}

	_, err := svc.FetchDirectory(context.Background(), "share-1", "src")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestFetchFile(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.fileRaw = map[string]string{"main.go": "package main"}

	content, err := svc.FetchFile(context.Background(), "share-1", "main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main", content)
}

func TestFetchFileDecodeFailurePropagates(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.fileRawErr = domain.ErrDecodeFailure

	_, err := svc.FetchFile(context.Background(), "share-1", "blob.bin")
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}

func TestFetchFileUpstreamFailureIsNotFound(t *testing.T) {
	_, _, _, svc := newSnapshotFixture()

	_, err := svc.FetchFile(context.Background(), "share-1", "missing.go")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchImageAsDataURL(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.base64Payload = "iVBORw0KGgo="
	gh.base64Encoding = "base64"

	dataURL, err := svc.FetchImageAsDataURL(context.Background(), "share-1", "/assets/logo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"), dataURL)
	assert.Equal(t, "assets/logo.png", gh.gotPath, "leading slash stripped")
}

func TestFetchImageUnexpectedEncoding(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.base64Payload = "plain bytes"
	gh.base64Encoding = "utf-8"

	_, err := svc.FetchImageAsDataURL(context.Background(), "share-1", "assets/logo.png")
	assert.ErrorIs(t, err, domain.ErrDecodeFailure)
}

func TestFetchImageUnknownExtension(t *testing.T) {
	_, _, gh, svc := newSnapshotFixture()
	gh.base64Payload = "AAAA"
	gh.base64Encoding = "base64"

	dataURL, err := svc.FetchImageAsDataURL(context.Background(), "share-1", "data.bin")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:application/octet-stream;base64,"), dataURL)
}

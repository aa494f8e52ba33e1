package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/Tony-ArtZ/git-peek/internal/core/ports"
)

var (
	readmePattern  = regexp.MustCompile(`(?i)^readme\.(md|txt|rst)$`)
	licensePattern = regexp.MustCompile(`(?i)^(license|licence)(\.md|\.txt)?$`)
)

type DefaultSnapshotService struct {
	Redirects ports.RedirectRepository
	Accounts  ports.AccountRepository
	GitHub    ports.GitHubClient
}

func NewSnapshotService(redirects ports.RedirectRepository, accounts ports.AccountRepository, github ports.GitHubClient) ports.SnapshotService {
	return &DefaultSnapshotService{
		Redirects: redirects,
		Accounts:  accounts,
		GitHub:    github,
	}
}

// resolveAccess re-derives the owner token and the parsed repository
// reference for a redirect. No state is carried between calls; every
// operation starts here. A missing credential is AccessDenied, a malformed
// stored reference is reported as NotFound so visitors cannot probe which.
func (s *DefaultSnapshotService) resolveAccess(ctx context.Context, redirectID string) (string, domain.RepoReference, error) {
	redirect, err := s.Redirects.GetByID(ctx, redirectID)
	if err != nil {
		log.Printf("redirect lookup failed for %s: %v", redirectID, err)
		return "", domain.RepoReference{}, domain.ErrNotFound
	}

	token, err := s.Accounts.GetAccessToken(ctx, redirect.UserID)
	if err != nil || token == "" {
		return "", domain.RepoReference{}, domain.ErrAccessDenied
	}

	ref, err := domain.ParseRepoReference(redirect.RepoRef)
	if err != nil {
		log.Printf("malformed repo reference for redirect %s: %v", redirectID, err)
		return "", domain.RepoReference{}, domain.ErrNotFound
	}

	return token, ref, nil
}

// BuildSnapshot assembles the initial view of a shared repository. Every
// call re-derives access from the store and revalidates the owner's token;
// snapshots are never cached, so a deleted redirect or a revoked credential
// takes effect on the very next visit.
func (s *DefaultSnapshotService) BuildSnapshot(ctx context.Context, redirectID string) (domain.Snapshot, error) {
	token, ref, err := s.resolveAccess(ctx, redirectID)
	if err != nil {
		return domain.Snapshot{}, err
	}

	// A revoked token fails here rather than surfacing as a misleading
	// not-found from the repository endpoints.
	if err := s.GitHub.ValidateToken(ctx, token); err != nil {
		log.Printf("token validation failed for redirect %s: %v", redirectID, err)
		return domain.Snapshot{}, domain.ErrAccessDenied
	}

	// Metadata and listing are independent reads; fetch both at once. Either
	// failing aborts the snapshot — partial snapshots are never returned.
	var (
		repo       domain.Repo
		files      []domain.FileEntry
		repoErr    error
		listingErr error
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		repo, repoErr = s.GitHub.GetRepository(ctx, token, ref.Owner, ref.Repo)
	}()
	go func() {
		defer wg.Done()
		files, listingErr = s.GitHub.ListDirectory(ctx, token, ref.Owner, ref.Repo, "")
	}()
	wg.Wait()

	if repoErr != nil || listingErr != nil {
		log.Printf("snapshot fetch failed for %s: repo=%v listing=%v", ref, repoErr, listingErr)
		return domain.Snapshot{}, domain.ErrNotFound
	}

	snapshot := domain.Snapshot{Repo: repo, Files: files}

	// README and LICENSE are enrichments. Fetched concurrently, failures
	// swallowed; the snapshot stands without them.
	wg.Add(2)
	go func() {
		defer wg.Done()
		snapshot.ReadmeText = s.fetchEnrichment(ctx, files, readmePattern)
	}()
	go func() {
		defer wg.Done()
		snapshot.LicenseText = s.fetchEnrichment(ctx, files, licensePattern)
	}()
	wg.Wait()

	return snapshot, nil
}

func (s *DefaultSnapshotService) fetchEnrichment(ctx context.Context, files []domain.FileEntry, pattern *regexp.Regexp) string {
	for _, f := range files {
		if f.Kind != domain.KindFile || !pattern.MatchString(f.Name) {
			continue
		}
		if f.DownloadURL == "" {
			return ""
		}
		text, err := s.GitHub.FetchRawURL(ctx, f.DownloadURL)
		if err != nil {
			log.Printf("enrichment fetch failed for %s: %v", f.Path, err)
			return ""
		}
		return text
	}
	return ""
}

func (s *DefaultSnapshotService) FetchDirectory(ctx context.Context, redirectID, path string) ([]domain.FileEntry, error) {
	token, ref, err := s.resolveAccess(ctx, redirectID)
	if err != nil {
		return nil, err
	}

	entries, err := s.GitHub.ListDirectory(ctx, token, ref.Owner, ref.Repo, path)
	if err != nil {
		log.Printf("directory fetch failed for %s/%s: %v", ref, path, err)
		return nil, domain.ErrNotFound
	}
	return entries, nil
}

func (s *DefaultSnapshotService) FetchFile(ctx context.Context, redirectID, path string) (string, error) {
	token, ref, err := s.resolveAccess(ctx, redirectID)
	if err != nil {
		return "", err
	}

	content, err := s.GitHub.GetFileRaw(ctx, token, ref.Owner, ref.Repo, path)
	if err != nil {
		log.Printf("file fetch failed for %s/%s: %v", ref, path, err)
		if errors.Is(err, domain.ErrDecodeFailure) {
			return "", err
		}
		return "", domain.ErrNotFound
	}
	return content, nil
}

// FetchImageAsDataURL embeds a repository asset as a data URL so the
// visitor's browser never needs the owner's token to display it.
func (s *DefaultSnapshotService) FetchImageAsDataURL(ctx context.Context, redirectID, path string) (string, error) {
	token, ref, err := s.resolveAccess(ctx, redirectID)
	if err != nil {
		return "", err
	}

	clean := strings.TrimPrefix(path, "/")
	payload, encoding, err := s.GitHub.GetFileBase64(ctx, token, ref.Owner, ref.Repo, clean)
	if err != nil {
		log.Printf("image fetch failed for %s/%s: %v", ref, clean, err)
		return "", domain.ErrNotFound
	}
	if encoding != "base64" || payload == "" {
		return "", fmt.Errorf("%w: unexpected encoding %q", domain.ErrDecodeFailure, encoding)
	}

	return "data:" + MimeTypeFor(clean) + ";base64," + payload, nil
}

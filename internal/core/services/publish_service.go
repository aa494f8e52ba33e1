package services

import (
	"context"
	"errors"
	"log"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/Tony-ArtZ/git-peek/internal/core/ports"
	"github.com/google/uuid"
)

type DefaultPublishService struct {
	Redirects ports.RedirectRepository
	Accounts  ports.AccountRepository
	GitHub    ports.GitHubClient
}

func NewPublishService(redirects ports.RedirectRepository, accounts ports.AccountRepository, github ports.GitHubClient) ports.PublishService {
	return &DefaultPublishService{Redirects: redirects, Accounts: accounts, GitHub: github}
}

func (s *DefaultPublishService) PublishRepo(ctx context.Context, userID, repoRef string) (domain.Redirect, error) {
	if userID == "" {
		return domain.Redirect{}, errors.New("userID is required")
	}
	if _, err := domain.ParseRepoReference(repoRef); err != nil {
		return domain.Redirect{}, err
	}

	redirect := domain.Redirect{
		ID:      uuid.New().String(),
		RepoRef: repoRef,
		UserID:  userID,
	}
	return s.Redirects.Save(ctx, redirect)
}

func (s *DefaultPublishService) DeleteRedirect(ctx context.Context, userID, redirectID string) (bool, error) {
	if userID == "" {
		return false, errors.New("userID is required")
	}
	return s.Redirects.Delete(ctx, redirectID, userID)
}

// ListPublishedRepos returns the owner's redirects with view stats, enriched
// best-effort with upstream metadata. Enrichment failures leave the rows
// bare rather than failing the listing.
func (s *DefaultPublishService) ListPublishedRepos(ctx context.Context, userID string) ([]domain.PublishedRepo, error) {
	published, err := s.Redirects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(published) == 0 {
		return published, nil
	}

	token, err := s.Accounts.GetAccessToken(ctx, userID)
	if err != nil || token == "" {
		return published, nil
	}

	repos, err := s.GitHub.ListUserRepos(ctx, token)
	if err != nil {
		log.Printf("repo enrichment failed for user %s: %v", userID, err)
		return published, nil
	}

	byFullName := make(map[string]domain.Repo, len(repos))
	for _, r := range repos {
		byFullName[r.FullName] = r
	}

	for i := range published {
		ref, err := domain.ParseRepoReference(published[i].RepoRef)
		if err != nil {
			continue
		}
		if repo, ok := byFullName[ref.String()]; ok {
			published[i].RepoName = repo.Name
			published[i].RepoURL = repo.HTMLURL
			if repo.Description != nil {
				published[i].Description = *repo.Description
			}
			published[i].Private = repo.Private
		}
	}
	return published, nil
}

func (s *DefaultPublishService) ListUserRepos(ctx context.Context, userID string) ([]domain.Repo, error) {
	token, err := s.Accounts.GetAccessToken(ctx, userID)
	if err != nil || token == "" {
		return nil, domain.ErrAccessDenied
	}
	return s.GitHub.ListUserRepos(ctx, token)
}

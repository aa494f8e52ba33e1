package ports

import (
	"context"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
)

type RedirectRepository interface {
	Save(ctx context.Context, redirect domain.Redirect) (domain.Redirect, error)
	GetByID(ctx context.Context, id string) (domain.Redirect, error)
	ListByUser(ctx context.Context, userID string) ([]domain.PublishedRepo, error)
	Delete(ctx context.Context, id string, userID string) (bool, error)
}

type AccountRepository interface {
	// GetAccessToken returns the stored upstream token for a user. A missing
	// account and a store error look the same to callers: an error.
	GetAccessToken(ctx context.Context, userID string) (string, error)
}

type ViewStatRepository interface {
	IncrementView(ctx context.Context, redirectID string) error
	GetViewStats(ctx context.Context, redirectID string) (domain.ViewStat, error)
}

type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttlSeconds int) error
	IncrementCounter(ctx context.Context, key string) error
}

// GitHubClient is the authenticated upstream API surface the aggregator
// builds on. Every call takes the owner's token explicitly; nothing here
// reads ambient session state.
type GitHubClient interface {
	ValidateToken(ctx context.Context, token string) error
	GetRepository(ctx context.Context, token, owner, repo string) (domain.Repo, error)
	ListDirectory(ctx context.Context, token, owner, repo, path string) ([]domain.FileEntry, error)
	GetFileRaw(ctx context.Context, token, owner, repo, path string) (string, error)
	GetFileBase64(ctx context.Context, token, owner, repo, path string) (payload string, encoding string, err error)
	ListUserRepos(ctx context.Context, token string) ([]domain.Repo, error)
	FetchRawURL(ctx context.Context, url string) (string, error)
}

type SnapshotService interface {
	BuildSnapshot(ctx context.Context, redirectID string) (domain.Snapshot, error)
	FetchDirectory(ctx context.Context, redirectID, path string) ([]domain.FileEntry, error)
	FetchFile(ctx context.Context, redirectID, path string) (string, error)
	FetchImageAsDataURL(ctx context.Context, redirectID, path string) (string, error)
}

type PublishService interface {
	PublishRepo(ctx context.Context, userID, repoRef string) (domain.Redirect, error)
	DeleteRedirect(ctx context.Context, userID, redirectID string) (bool, error)
	ListPublishedRepos(ctx context.Context, userID string) ([]domain.PublishedRepo, error)
	ListUserRepos(ctx context.Context, userID string) ([]domain.Repo, error)
}

type ViewService interface {
	TrackView(ctx context.Context, redirectID string)
	GetViewStats(ctx context.Context, redirectID string) (domain.ViewStat, error)
}

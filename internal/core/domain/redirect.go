package domain

import "time"

// Redirect maps a public share ID to an upstream repository owned by a user.
// Immutable after creation; removed only by its owner.
type Redirect struct {
	ID        string    `json:"id" db:"id"`
	RepoRef   string    `json:"repo_ref" db:"githubRepoId"`
	UserID    string    `json:"user_id" db:"userId"`
	CreatedAt time.Time `json:"created_at" db:"createdAt"`
}

// ViewStat tracks how often a redirect has been visited. At most one per
// redirect; created lazily on first view.
type ViewStat struct {
	RedirectID   string    `json:"redirect_id" db:"id"`
	Count        int       `json:"count" db:"count"`
	LastViewedAt time.Time `json:"last_viewed_at" db:"lastViewed"`
}

// PublishedRepo is a dashboard row: a redirect joined with its view stats
// and, when reachable, metadata from the upstream repository.
type PublishedRepo struct {
	ID          string     `json:"id"`
	RepoRef     string     `json:"repo_ref"`
	CreatedAt   time.Time  `json:"created_at"`
	ViewCount   int        `json:"view_count"`
	LastViewed  *time.Time `json:"last_viewed,omitempty"`
	RepoName    string     `json:"repo_name,omitempty"`
	RepoURL     string     `json:"repo_url,omitempty"`
	Description string     `json:"description,omitempty"`
	Private     bool       `json:"private"`
}

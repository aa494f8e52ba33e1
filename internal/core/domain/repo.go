package domain

// Repo is the upstream repository descriptor, decoded from the metadata
// endpoint. Field names mirror the upstream JSON.
type Repo struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	HTMLURL         string  `json:"html_url"`
	CloneURL        string  `json:"clone_url"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	OpenIssuesCount int     `json:"open_issues_count"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	Private         bool    `json:"private"`
	DefaultBranch   string  `json:"default_branch"`
}

type EntryKind string

const (
	KindFile EntryKind = "file"
	KindDir  EntryKind = "dir"
)

// FileEntry is a single row of a directory listing, in whatever order the
// upstream returned it. Sorting for display is a presentation concern.
type FileEntry struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Kind        EntryKind `json:"type"`
	Size        int64     `json:"size,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
}

// Snapshot is the aggregated initial view of a repository: metadata plus the
// top-level listing, with README and LICENSE text when they could be fetched.
// ReadmeText and LicenseText are enrichments; an empty value means the file
// was absent or unreadable, never that the snapshot failed.
type Snapshot struct {
	Repo        Repo        `json:"repo"`
	Files       []FileEntry `json:"files"`
	ReadmeText  string      `json:"readme,omitempty"`
	LicenseText string      `json:"license,omitempty"`
}

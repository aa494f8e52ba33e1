package domain

import "strings"

const hostPrefix = "https://github.com/"

// RepoReference is the normalized (owner, repo) pair parsed out of a
// redirect's stored reference. Derived at resolution time, never persisted.
type RepoReference struct {
	Owner string
	Repo  string
}

func (r RepoReference) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseRepoReference normalizes a stored repository reference. It accepts a
// bare "owner/repo" string or a full repository URL, strips a single trailing
// slash, and ignores any path segments past the first two. Malformed input
// yields ErrParseFailure, never a partial result. Pure; no I/O.
func ParseRepoReference(raw string) (RepoReference, error) {
	ref := strings.TrimPrefix(raw, hostPrefix)
	ref = strings.TrimSuffix(ref, "/")

	parts := strings.Split(ref, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return RepoReference{}, ErrParseFailure
	}

	return RepoReference{Owner: parts[0], Repo: parts[1]}, nil
}

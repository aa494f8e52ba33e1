package auth

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/Tony-ArtZ/git-peek/internal/core/ports"
)

const sessionCacheTTL = 300

// SessionValidator resolves a next-auth database session cookie to a user
// ID, checking redis before hitting the session table. The web app owns the
// sign-in flow; this side only consumes the resulting sessions.
type SessionValidator struct {
	DB           *sql.DB
	Cache        ports.CacheRepository
	validateStmt *sql.Stmt
	initOnce     sync.Once
}

func NewSessionValidator(db *sql.DB, cache ports.CacheRepository) *SessionValidator {
	sv := &SessionValidator{
		DB:    db,
		Cache: cache,
	}
	sv.initOnce.Do(sv.initStatements)
	return sv
}

func (sv *SessionValidator) initStatements() {
	var err error
	sv.validateStmt, err = sv.DB.Prepare(`SELECT "userId" FROM session WHERE "sessionToken" = $1 AND expires > CURRENT_TIMESTAMP LIMIT 1`)
	if err != nil {
		panic("failed to prepare validate session statement: " + err.Error())
	}
}

func GetSessionFromCookie(cookieHeader string) (string, error) {
	if cookieHeader == "" {
		return "", errors.New("no cookie header")
	}

	for _, prefix := range []string{
		"__Secure-authjs.session-token=",
		"authjs.session-token=",
	} {
		idx := strings.Index(cookieHeader, prefix)
		if idx == -1 {
			continue
		}
		start := idx + len(prefix)
		end := strings.IndexByte(cookieHeader[start:], ';')
		if end == -1 {
			end = len(cookieHeader)
		} else {
			end = start + end
		}
		token := cookieHeader[start:end]
		if decoded, err := url.QueryUnescape(token); err == nil {
			return decoded, nil
		}
		return token, nil
	}

	return "", errors.New("session cookie not found")
}

func (sv *SessionValidator) ValidateSession(ctx context.Context, sessionToken string) (string, error) {
	if sessionToken == "" {
		return "", errors.New("session token is required")
	}

	cacheKey := "session:" + sessionToken
	if cachedUserID, err := sv.Cache.Get(ctx, cacheKey); err == nil && cachedUserID != "" {
		return cachedUserID, nil
	}

	var userID string
	if err := sv.validateStmt.QueryRowContext(ctx, sessionToken).Scan(&userID); err == nil {
		go func() {
			_ = sv.Cache.Set(context.Background(), cacheKey, userID, sessionCacheTTL)
		}()
		return userID, nil
	}

	return "", errors.New("invalid or expired session")
}

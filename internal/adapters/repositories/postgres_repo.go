package repositories

import (
	"context"
	"database/sql"
	"sync"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepo backs the redirect, account-credential and view-count
// collections. Statements are prepared once; the schema (next-auth style
// quoted camelCase columns) comes from the web app that owns the tables.
type PostgresRepo struct {
	DB                 *sql.DB
	saveRedirectStmt   *sql.Stmt
	getRedirectStmt    *sql.Stmt
	listByUserStmt     *sql.Stmt
	deleteRedirectStmt *sql.Stmt
	accessTokenStmt    *sql.Stmt
	incrementViewStmt  *sql.Stmt
	viewStatsStmt      *sql.Stmt
	initOnce           sync.Once
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	repo := &PostgresRepo{DB: db}
	repo.initOnce.Do(repo.initStatements)
	return repo
}

func (r *PostgresRepo) initStatements() {
	var err error

	r.saveRedirectStmt, err = r.DB.Prepare(`
		INSERT INTO redirect (id, "githubRepoId", "userId", "createdAt")
		VALUES ($1, $2, $3, NOW())
		RETURNING "createdAt"`)
	if err != nil {
		panic("failed to prepare save redirect statement: " + err.Error())
	}

	r.getRedirectStmt, err = r.DB.Prepare(`
		SELECT id, "githubRepoId", "userId", "createdAt"
		FROM redirect
		WHERE id = $1
		LIMIT 1`)
	if err != nil {
		panic("failed to prepare get redirect statement: " + err.Error())
	}

	r.listByUserStmt, err = r.DB.Prepare(`
		SELECT r.id, r."githubRepoId", r."createdAt", COALESCE(v.count, 0), v."lastViewed"
		FROM redirect r
		LEFT JOIN "viewCount" v ON v.id = r.id
		WHERE r."userId" = $1
		ORDER BY r."createdAt"`)
	if err != nil {
		panic("failed to prepare list redirects statement: " + err.Error())
	}

	r.deleteRedirectStmt, err = r.DB.Prepare(`
		DELETE FROM redirect
		WHERE id = $1 AND "userId" = $2`)
	if err != nil {
		panic("failed to prepare delete redirect statement: " + err.Error())
	}

	r.accessTokenStmt, err = r.DB.Prepare(`
		SELECT a.access_token
		FROM account a
		INNER JOIN "user" u ON a."userId" = u.id
		WHERE u.id = $1
		LIMIT 1`)
	if err != nil {
		panic("failed to prepare access token statement: " + err.Error())
	}

	r.incrementViewStmt, err = r.DB.Prepare(`
		INSERT INTO "viewCount" (id, count, "lastViewed")
		VALUES ($1, 1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET
			count = "viewCount".count + 1,
			"lastViewed" = NOW()`)
	if err != nil {
		panic("failed to prepare increment view statement: " + err.Error())
	}

	r.viewStatsStmt, err = r.DB.Prepare(`
		SELECT count, "lastViewed"
		FROM "viewCount"
		WHERE id = $1
		LIMIT 1`)
	if err != nil {
		panic("failed to prepare view stats statement: " + err.Error())
	}
}

func (r *PostgresRepo) Save(ctx context.Context, redirect domain.Redirect) (domain.Redirect, error) {
	err := r.saveRedirectStmt.QueryRowContext(ctx, redirect.ID, redirect.RepoRef, redirect.UserID).
		Scan(&redirect.CreatedAt)
	return redirect, err
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (domain.Redirect, error) {
	var redirect domain.Redirect

	err := r.getRedirectStmt.QueryRowContext(ctx, id).
		Scan(&redirect.ID, &redirect.RepoRef, &redirect.UserID, &redirect.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Redirect{}, domain.ErrNotFound
		}
		return domain.Redirect{}, err
	}
	return redirect, nil
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.PublishedRepo, error) {
	rows, err := r.listByUserStmt.QueryContext(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var published []domain.PublishedRepo
	for rows.Next() {
		var row domain.PublishedRepo
		var lastViewed sql.NullTime
		if err := rows.Scan(&row.ID, &row.RepoRef, &row.CreatedAt, &row.ViewCount, &lastViewed); err != nil {
			return nil, err
		}
		if lastViewed.Valid {
			row.LastViewed = &lastViewed.Time
		}
		published = append(published, row)
	}
	return published, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, id string, userID string) (bool, error) {
	result, err := r.deleteRedirectStmt.ExecContext(ctx, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresRepo) GetAccessToken(ctx context.Context, userID string) (string, error) {
	var token sql.NullString
	if err := r.accessTokenStmt.QueryRowContext(ctx, userID).Scan(&token); err != nil {
		return "", err
	}
	return token.String, nil
}

func (r *PostgresRepo) IncrementView(ctx context.Context, redirectID string) error {
	_, err := r.incrementViewStmt.ExecContext(ctx, redirectID)
	return err
}

func (r *PostgresRepo) GetViewStats(ctx context.Context, redirectID string) (domain.ViewStat, error) {
	stat := domain.ViewStat{RedirectID: redirectID}

	err := r.viewStatsStmt.QueryRowContext(ctx, redirectID).Scan(&stat.Count, &stat.LastViewedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ViewStat{RedirectID: redirectID}, nil
		}
		return domain.ViewStat{}, err
	}
	return stat, nil
}

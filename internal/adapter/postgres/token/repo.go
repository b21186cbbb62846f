// Package token implements the refresh token repository using PostgreSQL.
// Only SHA-256 hashes of refresh tokens are ever stored.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at)
VALUES ($1, $2, $3, $4)`

// Create stores a new refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	if _, err := querier.Exec(ctx, insertSQL, id, t.UserID, t.TokenHash, t.ExpiresAt); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}

	return nil
}

const getByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_tokens
WHERE token_hash = $1`

// GetByHash returns a stored token by its hash.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		t       domain.RefreshToken
		revoked pgtype.Timestamptz
	)
	err := querier.QueryRow(ctx, getByHashSQL, hash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &revoked,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	if revoked.Valid {
		t.RevokedAt = &revoked.Time
	}
	return &t, nil
}

const revokeSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

// Revoke marks a token revoked. Revoking an already revoked token is a no-op.
func (r *Repo) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeSQL, tokenID); err != nil {
		return postgres.MapError(err, "refresh_token", tokenID)
	}

	return nil
}

const revokeAllSQL = `
UPDATE refresh_tokens SET revoked_at = now()
WHERE user_id = $1 AND revoked_at IS NULL`

// RevokeAllForUser revokes every active token of a user (logout everywhere).
func (r *Repo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, revokeAllSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	return nil
}

const deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at < $1`

// DeleteExpired removes tokens that expired before the cutoff and returns the
// number of rows removed. Run periodically by the scheduler.
func (r *Repo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, deleteExpiredSQL, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

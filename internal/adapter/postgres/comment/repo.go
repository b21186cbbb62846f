// Package comment implements the Comment repository using PostgreSQL.
// Reads join the author's display name; cascading deletion walks the reply
// chain with a recursive CTE so counts and deletes always agree.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const listByIdeaSQL = `
SELECT c.id, c.idea_id, c.author_id, c.parent_comment_id, c.content,
       c.is_flagged, c.created_at, c.updated_at,
       NULLIF(COALESCE(NULLIF(u.name, ''), u.username), '') AS author_name
FROM comments c
LEFT JOIN users u ON u.id = c.author_id
WHERE c.idea_id = $1
ORDER BY c.created_at, c.id
LIMIT $2`

// ListByIdeaID returns the flat, timestamp-ordered comment collection for an
// idea. The author display name is joined where available; rows with no
// resolvable name are returned with an empty Author for the service to fill
// via secondary lookup or the anonymous fallback.
func (r *Repo) ListByIdeaID(ctx context.Context, ideaID uuid.UUID, limit int) ([]domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByIdeaSQL, ideaID, limit)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	result, err := scanComments(rows)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return result, nil
}

const getByIDSQL = `
SELECT id, idea_id, author_id, parent_comment_id, content,
       is_flagged, created_at, updated_at
FROM comments
WHERE id = $1`

// GetByID returns a comment by primary key (no author join).
func (r *Repo) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		c      domain.Comment
		parent pgtype.UUID
	)
	err := querier.QueryRow(ctx, getByIDSQL, commentID).Scan(
		&c.ID, &c.IdeaID, &c.AuthorID, &parent, &c.Content,
		&c.IsFlagged, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	c.ParentCommentID = pgUUIDToPtr(parent)
	return &c, nil
}

const countThreadSQL = `
WITH RECURSIVE thread AS (
    SELECT id, parent_comment_id FROM comments WHERE id = $1
    UNION ALL
    SELECT c.id, c.parent_comment_id
    FROM comments c
    JOIN thread t ON c.parent_comment_id = t.id
)
SELECT count(*)::int,
       (count(*) FILTER (WHERE parent_comment_id IS NULL))::int
FROM thread`

// CountThread returns the size of the subtree rooted at commentID before
// deletion: total rows and how many of them are top-level. The decrement
// amount is always derived from this authoritative pre-delete count.
func (r *Repo) CountThread(ctx context.Context, commentID uuid.UUID) (total int, topLevel int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countThreadSQL, commentID).Scan(&total, &topLevel); err != nil {
		return 0, 0, postgres.MapError(err, "comment", commentID)
	}

	return total, topLevel, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const insertSQL = `
INSERT INTO comments (id, idea_id, author_id, parent_comment_id, content)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, idea_id, author_id, parent_comment_id, content,
          is_flagged, created_at, updated_at`

// Create inserts a comment and returns the persisted row.
// The same-idea parent invariant is enforced structurally by a composite
// foreign key on (parent_comment_id, idea_id); a violation maps to NotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var (
		out    domain.Comment
		parent pgtype.UUID
	)
	err := querier.QueryRow(ctx, insertSQL,
		id, c.IdeaID, c.AuthorID, ptrToPgUUID(c.ParentCommentID), c.Content,
	).Scan(
		&out.ID, &out.IdeaID, &out.AuthorID, &parent, &out.Content,
		&out.IsFlagged, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	out.ParentCommentID = pgUUIDToPtr(parent)
	return &out, nil
}

const updateContentSQL = `
UPDATE comments SET content = $2, updated_at = now()
WHERE id = $1
RETURNING id, idea_id, author_id, parent_comment_id, content,
          is_flagged, created_at, updated_at`

// UpdateContent replaces the content and refreshes updated_at.
// Authorship is the service's concern; the repo updates unconditionally.
func (r *Repo) UpdateContent(ctx context.Context, commentID uuid.UUID, content string) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		out    domain.Comment
		parent pgtype.UUID
	)
	err := querier.QueryRow(ctx, updateContentSQL, commentID, content).Scan(
		&out.ID, &out.IdeaID, &out.AuthorID, &parent, &out.Content,
		&out.IsFlagged, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", commentID)
	}

	out.ParentCommentID = pgUUIDToPtr(parent)
	return &out, nil
}

const deleteThreadSQL = `
WITH RECURSIVE thread AS (
    SELECT id FROM comments WHERE id = $1
    UNION ALL
    SELECT c.id
    FROM comments c
    JOIN thread t ON c.parent_comment_id = t.id
)
DELETE FROM comments WHERE id IN (SELECT id FROM thread)`

// DeleteThread removes the comment and every comment transitively parented
// by it. Returns the number of rows removed.
func (r *Repo) DeleteThread(ctx context.Context, commentID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteThreadSQL, commentID)
	if err != nil {
		return 0, postgres.MapError(err, "comment", commentID)
	}

	return int(tag.RowsAffected()), nil
}

const setFlaggedSQL = `UPDATE comments SET is_flagged = $2 WHERE id = $1`

// SetFlagged sets the moderation flag. Idempotent: re-flagging a flagged
// comment affects one row and changes nothing.
func (r *Repo) SetFlagged(ctx context.Context, commentID uuid.UUID, flagged bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setFlaggedSQL, commentID, flagged)
	if err != nil {
		return postgres.MapError(err, "comment", commentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	var result []domain.Comment
	for rows.Next() {
		var (
			c          domain.Comment
			parent     pgtype.UUID
			authorName pgtype.Text
		)
		if err := rows.Scan(
			&c.ID, &c.IdeaID, &c.AuthorID, &parent, &c.Content,
			&c.IsFlagged, &c.CreatedAt, &c.UpdatedAt, &authorName,
		); err != nil {
			return nil, err
		}

		c.ParentCommentID = pgUUIDToPtr(parent)
		if authorName.Valid {
			c.Author = domain.AuthorName{Name: authorName.String, Source: domain.AuthorJoined}
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Comment{}
	}

	return result, nil
}

func ptrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func pgUUIDToPtr(id pgtype.UUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}
	out := uuid.UUID(id.Bytes)
	return &out
}

// Package project implements the ProjectLink repository using PostgreSQL.
package project

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

const columns = `id, idea_id, author_id, title, url, description, tools_used, created_at, updated_at`

// Repo provides project link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByIdeaSQL = `
SELECT ` + columns + `
FROM project_links
WHERE idea_id = $1
ORDER BY created_at DESC, id`

// ListByIdeaID returns all project links for an idea, newest first.
// Returns an empty slice (not nil) when the idea has none.
func (r *Repo) ListByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]domain.ProjectLink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByIdeaSQL, ideaID)
	if err != nil {
		return nil, fmt.Errorf("list project links: %w", err)
	}
	defer rows.Close()

	result, err := scanLinks(rows)
	if err != nil {
		return nil, fmt.Errorf("list project links: %w", err)
	}

	return result, nil
}

const getByIDSQL = `SELECT ` + columns + ` FROM project_links WHERE id = $1`

// GetByID returns a project link by primary key.
func (r *Repo) GetByID(ctx context.Context, linkID uuid.UUID) (*domain.ProjectLink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	link, err := scanLink(querier.QueryRow(ctx, getByIDSQL, linkID))
	if err != nil {
		return nil, postgres.MapError(err, "project_link", linkID)
	}

	return link, nil
}

const countByIdeaSQL = `SELECT count(*) FROM project_links WHERE idea_id = $1`

// CountByIdeaID returns the number of project links attached to an idea.
func (r *Repo) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByIdeaSQL, ideaID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count project links: %w", err)
	}

	return count, nil
}

const insertSQL = `
INSERT INTO project_links (id, idea_id, author_id, title, url, description, tools_used)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + columns

// Create inserts a project link and returns the persisted row.
func (r *Repo) Create(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := link.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	out, err := scanLink(querier.QueryRow(ctx, insertSQL,
		id, link.IdeaID, link.AuthorID, link.Title, link.URL,
		ptrStringToPgText(link.Description), link.ToolsUsed,
	))
	if err != nil {
		return nil, postgres.MapError(err, "project_link", id)
	}

	return out, nil
}

const updateSQL = `
UPDATE project_links
SET title = $2, url = $3, description = $4, tools_used = $5, updated_at = now()
WHERE id = $1
RETURNING ` + columns

// Update replaces the mutable fields and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, link *domain.ProjectLink) (*domain.ProjectLink, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanLink(querier.QueryRow(ctx, updateSQL,
		link.ID, link.Title, link.URL,
		ptrStringToPgText(link.Description), link.ToolsUsed,
	))
	if err != nil {
		return nil, postgres.MapError(err, "project_link", link.ID)
	}

	return out, nil
}

const deleteSQL = `DELETE FROM project_links WHERE id = $1`

// Delete removes a project link.
func (r *Repo) Delete(ctx context.Context, linkID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, linkID)
	if err != nil {
		return postgres.MapError(err, "project_link", linkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project_link %s: %w", linkID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (*domain.ProjectLink, error) {
	var (
		link domain.ProjectLink
		desc pgtype.Text
	)
	if err := row.Scan(
		&link.ID, &link.IdeaID, &link.AuthorID, &link.Title, &link.URL,
		&desc, &link.ToolsUsed, &link.CreatedAt, &link.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if desc.Valid {
		link.Description = &desc.String
	}

	return &link, nil
}

func scanLinks(rows pgx.Rows) ([]domain.ProjectLink, error) {
	var result []domain.ProjectLink
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *link)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.ProjectLink{}
	}

	return result, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Package idea implements the Idea repository using PostgreSQL.
// It provides the tier-aware catalog query, point lookups, and the atomic
// counter primitives that back the denormalized aggregates.
package idea

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// psql is the squirrel statement builder with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ideaColumns is the canonical column list for SELECTs, matching scanIdea.
var ideaColumns = []string{
	"id", "title", "summary", "description", "build_guide",
	"category", "difficulty", "tools", "tags",
	"free_tier", "is_teaser",
	"view_count", "comment_count", "project_count",
	"created_at",
}

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an idea by primary key regardless of tier; visibility is
// the service's decision (a hidden idea must yield Forbidden, not NotFound).
func (r *Repo) GetByID(ctx context.Context, ideaID uuid.UUID) (*domain.Idea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(ideaColumns...).
		From("ideas").
		Where(sq.Eq{"id": ideaID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get idea: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "idea", ideaID)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, postgres.MapError(err, "idea", ideaID)
		}
		return nil, fmt.Errorf("idea %s: %w", ideaID, domain.ErrNotFound)
	}

	idea, err := scanIdea(rows)
	if err != nil {
		return nil, postgres.MapError(err, "idea", ideaID)
	}

	return &idea, nil
}

// List returns one page of ideas matching the filter plus the total count of
// the filtered, tier-restricted set before pagination.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Idea, int, error) {
	f.normalize()
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	where := f.where()

	countQuery, countArgs, err := psql.Select("count(*)").
		From("ideas").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count ideas: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ideas: %w", err)
	}

	query, args, err := psql.Select(ideaColumns...).
		From("ideas").
		Where(where).
		OrderBy(f.orderBy()).
		Limit(uint64(f.Page.Limit)).
		Offset(uint64(f.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list ideas: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ideas: %w", err)
	}
	defer rows.Close()

	ideas, err := scanIdeas(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list ideas: %w", err)
	}

	return ideas, total, nil
}

// ---------------------------------------------------------------------------
// Atomic counter primitives
// ---------------------------------------------------------------------------

const incrementViewSQL = `
UPDATE ideas SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`

// IncrementViewCount atomically bumps view_count and returns the new value.
func (r *Repo) IncrementViewCount(ctx context.Context, ideaID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, incrementViewSQL, ideaID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "idea", ideaID)
	}

	return count, nil
}

// Single-statement adjustments: the clamp lives in SQL so two concurrent
// writers can never interleave a read-modify-write and lose an update.
const (
	adjustCommentCountSQL = `
UPDATE ideas SET comment_count = GREATEST(comment_count + $2, 0) WHERE id = $1`

	adjustProjectCountSQL = `
UPDATE ideas SET project_count = GREATEST(project_count + $2, 0) WHERE id = $1 RETURNING project_count`
)

// AdjustCommentCount atomically applies delta to comment_count, clamping at zero.
func (r *Repo) AdjustCommentCount(ctx context.Context, ideaID uuid.UUID, delta int) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, adjustCommentCountSQL, ideaID, delta)
	if err != nil {
		return postgres.MapError(err, "idea", ideaID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("idea %s: %w", ideaID, domain.ErrNotFound)
	}

	return nil
}

// AdjustProjectCount atomically applies delta to project_count, clamping at
// zero, and returns the stored value so callers can report the new total
// without a racy follow-up read.
func (r *Repo) AdjustProjectCount(ctx context.Context, ideaID uuid.UUID, delta int) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, adjustProjectCountSQL, ideaID, delta).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "idea", ideaID)
	}

	return count, nil
}

const reconcileCountsSQL = `
UPDATE ideas i SET
    comment_count = (SELECT count(*) FROM comments c
                     WHERE c.idea_id = i.id AND c.parent_comment_id IS NULL),
    project_count = (SELECT count(*) FROM project_links p WHERE p.idea_id = i.id)
WHERE i.comment_count <> (SELECT count(*) FROM comments c
                          WHERE c.idea_id = i.id AND c.parent_comment_id IS NULL)
   OR i.project_count <> (SELECT count(*) FROM project_links p WHERE p.idea_id = i.id)`

// ReconcileCounts recomputes drifted comment_count / project_count values
// from the underlying rows and returns the number of ideas corrected.
// Only top-level comments count, matching the maintainer's increment rule.
func (r *Repo) ReconcileCounts(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, reconcileCountsSQL)
	if err != nil {
		return 0, fmt.Errorf("reconcile counts: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Write operations (seed time)
// ---------------------------------------------------------------------------

const insertIdeaSQL = `
INSERT INTO ideas (id, title, summary, description, build_guide, category,
                   difficulty, tools, tags, free_tier, is_teaser, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// Create inserts a catalog idea. Used by the seeder; the serving path never
// creates ideas.
func (r *Repo) Create(ctx context.Context, idea *domain.Idea) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if idea.ID == uuid.Nil {
		idea.ID = uuid.New()
	}
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now().UTC()
	}

	_, err := querier.Exec(ctx, insertIdeaSQL,
		idea.ID, idea.Title, idea.Summary, idea.Description,
		ptrStringToPgText(idea.BuildGuide),
		string(idea.Category), string(idea.Difficulty),
		idea.Tools, idea.Tags, idea.FreeTier, idea.IsTeaser, idea.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "idea", idea.ID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanIdeas(rows pgx.Rows) ([]domain.Idea, error) {
	var result []domain.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Idea{}
	}

	return result, nil
}

func scanIdea(rows pgx.Rows) (domain.Idea, error) {
	var (
		idea       domain.Idea
		buildGuide pgtype.Text
		category   string
		difficulty string
	)

	if err := rows.Scan(
		&idea.ID, &idea.Title, &idea.Summary, &idea.Description, &buildGuide,
		&category, &difficulty, &idea.Tools, &idea.Tags,
		&idea.FreeTier, &idea.IsTeaser,
		&idea.ViewCount, &idea.CommentCount, &idea.ProjectCount,
		&idea.CreatedAt,
	); err != nil {
		return domain.Idea{}, err
	}

	idea.Category = domain.Category(category)
	idea.Difficulty = domain.Difficulty(difficulty)
	if buildGuide.Valid {
		idea.BuildGuide = &buildGuide.String
	}

	return idea, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

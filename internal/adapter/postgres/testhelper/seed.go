package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$" + suffix + "notarealhash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// IdeaOption mutates a seeded idea before insertion.
type IdeaOption func(*domain.Idea)

// FreeTier marks the idea as visible to guests.
func FreeTier() IdeaOption {
	return func(i *domain.Idea) { i.FreeTier = true }
}

// Teaser marks the idea as the designated teaser.
func Teaser() IdeaOption {
	return func(i *domain.Idea) { i.IsTeaser = true }
}

// WithCategory sets the idea's category.
func WithCategory(c domain.Category) IdeaOption {
	return func(i *domain.Idea) { i.Category = c }
}

// WithDifficulty sets the idea's difficulty.
func WithDifficulty(d domain.Difficulty) IdeaOption {
	return func(i *domain.Idea) { i.Difficulty = d }
}

// WithTools sets the idea's tool list.
func WithTools(tools ...string) IdeaOption {
	return func(i *domain.Idea) { i.Tools = tools }
}

// SeedIdea creates a catalog idea. By default it is premium (not free tier,
// not teaser); pass options to adjust. Returns a filled domain.Idea.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, opts ...IdeaOption) domain.Idea {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	guide := "Build guide " + suffix
	idea := domain.Idea{
		ID:          uuid.New(),
		Title:       "Test Idea " + suffix,
		Summary:     "Summary " + suffix,
		Description: "Description " + suffix,
		BuildGuide:  &guide,
		Category:    domain.CategoryWeb,
		Difficulty:  domain.DifficultyBeginner,
		Tools:       []string{"go", "postgres"},
		Tags:        []string{"test"},
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(&idea)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO ideas (id, title, summary, description, build_guide, category,
		                    difficulty, tools, tags, free_tier, is_teaser, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		idea.ID, idea.Title, idea.Summary, idea.Description, idea.BuildGuide,
		string(idea.Category), string(idea.Difficulty), idea.Tools, idea.Tags,
		idea.FreeTier, idea.IsTeaser, idea.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea insert idea: %v", err)
	}

	return idea
}

// SeedComment creates a comment on an idea. parentID may be nil for a
// top-level comment. Returns a filled domain.Comment.
func SeedComment(t *testing.T, pool *pgxpool.Pool, ideaID, authorID uuid.UUID, parentID *uuid.UUID) domain.Comment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{
		ID:              uuid.New(),
		IdeaID:          ideaID,
		AuthorID:        authorID,
		ParentCommentID: parentID,
		Content:         "Test comment " + suffix,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO comments (id, idea_id, author_id, parent_comment_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.IdeaID, c.AuthorID, c.ParentCommentID, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert comment: %v", err)
	}

	return c
}

// SeedProjectLink creates a project link on an idea. Returns a filled
// domain.ProjectLink.
func SeedProjectLink(t *testing.T, pool *pgxpool.Pool, ideaID, authorID uuid.UUID) domain.ProjectLink {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "Project description " + suffix
	link := domain.ProjectLink{
		ID:          uuid.New(),
		IdeaID:      ideaID,
		AuthorID:    authorID,
		Title:       "Test Project " + suffix,
		URL:         "https://example.com/projects/" + suffix,
		Description: &desc,
		ToolsUsed:   []string{"go"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO project_links (id, idea_id, author_id, title, url, description, tools_used, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		link.ID, link.IdeaID, link.AuthorID, link.Title, link.URL, link.Description,
		link.ToolsUsed, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProjectLink insert project_link: %v", err)
	}

	return link
}

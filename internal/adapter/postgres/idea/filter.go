package idea

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// likeEscaper neutralizes LIKE metacharacters so a search string matches
// literally instead of acting as a wildcard pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filter defines parameters for listing catalog ideas.
//
// Tier is part of the filter on purpose: the tier restriction is compiled
// into the WHERE clause together with the user filters, so a guest query can
// only ever narrow the guest-visible set, never widen it, and the count used
// for pagination metadata is computed over the same restricted set.
type Filter struct {
	Tier       domain.Tier
	Category   *domain.Category
	Difficulty *domain.Difficulty
	// Search matches case-insensitively against title, description, and any
	// tag or tool (OR across fields).
	Search *string
	// Tools keeps ideas whose tools overlap the given set.
	Tools []string

	Sort domain.SortKey
	Page domain.PageRequest
}

// normalize applies defaults and clamps pagination.
func (f *Filter) normalize() {
	if !f.Sort.IsValid() {
		f.Sort = domain.SortPopular
	}
	if f.Tier != domain.TierGuest && f.Tier != domain.TierAuthenticated {
		f.Tier = domain.TierGuest
	}
	f.Page.Normalize()
}

// where builds the combined tier + user filter predicate.
func (f *Filter) where() sq.And {
	var and sq.And

	// Tier restriction first. Authenticated callers see everything.
	if f.Tier == domain.TierGuest {
		and = append(and, sq.Or{
			sq.Eq{"free_tier": true},
			sq.Eq{"is_teaser": true},
		})
	}

	if f.Category != nil {
		and = append(and, sq.Eq{"category": string(*f.Category)})
	}
	if f.Difficulty != nil {
		and = append(and, sq.Eq{"difficulty": string(*f.Difficulty)})
	}
	if len(f.Tools) > 0 {
		and = append(and, sq.Expr("tools && ?::text[]", f.Tools))
	}
	if f.Search != nil && *f.Search != "" {
		pattern := "%" + likeEscaper.Replace(*f.Search) + "%"
		and = append(and, sq.Or{
			sq.Expr("title ILIKE ?", pattern),
			sq.Expr("description ILIKE ?", pattern),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS t WHERE t ILIKE ?)", pattern),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(tools) AS t WHERE t ILIKE ?)", pattern),
		})
	}

	if and == nil {
		// squirrel renders an empty And as "(1=1)"-less noise; keep it explicit.
		and = sq.And{sq.Expr("TRUE")}
	}
	return and
}

// orderBy returns the ORDER BY expression for the sort key. Every ordering
// ends with id to keep pagination stable across equal sort values.
func (f *Filter) orderBy() string {
	switch f.Sort {
	case domain.SortRecent:
		return "created_at DESC, id"
	case domain.SortDifficulty:
		return "CASE difficulty WHEN 'BEGINNER' THEN 1 WHEN 'INTERMEDIATE' THEN 2 ELSE 3 END, title ASC, id"
	case domain.SortTitle:
		return "title ASC, id"
	default: // SortPopular
		return "view_count DESC, created_at DESC, id"
	}
}

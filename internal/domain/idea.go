package domain

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a curated project idea in the catalog.
//
// Counters are denormalized aggregates maintained by the counter service;
// they are never written directly by request handlers.
type Idea struct {
	ID          uuid.UUID
	Title       string
	Summary     string
	Description string
	// BuildGuide is the long-form build walkthrough. Withheld from guests
	// when the idea is only visible to them as the teaser.
	BuildGuide *string
	Category   Category
	Difficulty Difficulty
	Tools      []string
	Tags       []string
	// FreeTier marks the idea as part of the guest-visible subset.
	FreeTier bool
	// IsTeaser marks the single catalog entry exposed to guests in reduced
	// form. An explicit column, not a title match.
	IsTeaser bool

	ViewCount    int
	CommentCount int
	ProjectCount int

	CreatedAt time.Time
}

// VisibleTo reports whether the idea is in the visible set for the tier.
// Authenticated callers see the whole catalog; guests see free-tier ideas
// plus the teaser.
func (i *Idea) VisibleTo(tier Tier) bool {
	if tier == TierAuthenticated {
		return true
	}
	return i.FreeTier || i.IsTeaser
}

// AccessFor returns the access level the tier gets on this idea.
// The teaser shape only applies to guests reaching an idea they would
// otherwise not see; free-tier ideas are fully visible to everyone.
func (i *Idea) AccessFor(tier Tier) AccessLevel {
	if tier == TierGuest && i.IsTeaser && !i.FreeTier {
		return AccessTeaser
	}
	return AccessFull
}

// TeaserShape returns a copy of the idea reduced to its descriptive fields.
// Counters and taxonomy stay; the build guide is dropped.
func (i *Idea) TeaserShape() Idea {
	out := *i
	out.BuildGuide = nil
	return out
}

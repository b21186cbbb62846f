package catalog

import (
	"context"
	"fmt"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// IdeaDetail is a single idea plus the access level it was served at.
type IdeaDetail struct {
	Idea   domain.Idea
	Access domain.AccessLevel
}

// GetIdea returns a single idea for the caller's tier.
//
// Existence is decided before access: an unknown id is NotFound even for a
// guest, while an existing idea outside the guest-visible set is Forbidden.
// A guest reaching the teaser gets the teaser shape.
func (s *Service) GetIdea(ctx context.Context, input GetIdeaInput) (*IdeaDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	idea, err := s.ideas.GetByID(ctx, input.IdeaID)
	if err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}

	tier := tierFromCtx(ctx)
	if !idea.VisibleTo(tier) {
		return nil, fmt.Errorf("idea %s: %w", input.IdeaID, domain.ErrForbidden)
	}

	detail := IdeaDetail{Idea: *idea, Access: idea.AccessFor(tier)}
	if detail.Access == domain.AccessTeaser {
		detail.Idea = idea.TeaserShape()
	}

	return &detail, nil
}

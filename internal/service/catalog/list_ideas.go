package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// IdeaPage is one page of catalog results plus pagination metadata computed
// over the filtered, tier-restricted set. Tier is the access level the page
// was resolved under, echoed back so clients can label gated content.
type IdeaPage struct {
	Ideas []domain.Idea
	Meta  domain.PageMeta
	Tier  domain.Tier
}

// ListIdeas returns a page of ideas visible to the caller's tier. Guests see
// only free-tier ideas and the teaser; user filters can narrow that set but
// never widen it. Premium ideas a guest can see (the teaser) are returned in
// teaser shape with the build guide withheld.
func (s *Service) ListIdeas(ctx context.Context, input ListIdeasInput) (*IdeaPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tier := tierFromCtx(ctx)
	f := input.filter(tier)

	ideas, total, err := s.ideas.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	for i := range ideas {
		if ideas[i].AccessFor(tier) == domain.AccessTeaser {
			ideas[i] = ideas[i].TeaserShape()
		}
	}

	f.Page.Normalize()
	meta := domain.NewPageMeta(f.Page, total)

	s.log.DebugContext(ctx, "ideas listed",
		slog.String("tier", string(tier)),
		slog.Int("total", total),
		slog.Int("page", meta.Page),
	)

	return &IdeaPage{Ideas: ideas, Meta: meta, Tier: tier}, nil
}

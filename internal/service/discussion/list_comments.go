package discussion

import (
	"context"
	"fmt"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// Discussion is an idea's comment forest plus the flat comment total.
type Discussion struct {
	Threads []*domain.CommentNode
	// Total counts every returned comment at any depth, not just threads.
	Total int
	// MaxRenderDepth tells consumers where to stop expanding nested replies.
	MaxRenderDepth int
}

// ListComments returns the threaded discussion of an idea. Visibility follows
// the idea itself: guests can read discussion on ideas they can see.
func (s *Service) ListComments(ctx context.Context, input ListCommentsInput) (*Discussion, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.visibleIdea(ctx, input.IdeaID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments, err := s.comments.ListByIdeaID(ctx, input.IdeaID, s.maxCommentsPerFetch)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments = s.resolveAuthors(ctx, comments)
	threads := buildTree(comments)

	return &Discussion{
		Threads:        threads,
		Total:          countNodes(threads),
		MaxRenderDepth: domain.MaxRenderDepth,
	}, nil
}

// countNodes counts every comment in the forest; dropped orphans are not
// part of the total.
func countNodes(nodes []*domain.CommentNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + countNodes(node.Replies)
	}
	return n
}

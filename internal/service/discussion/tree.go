package discussion

import (
	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// buildTree assembles the flat, creation-ordered comment slice into a forest
// of threads. Input order is preserved at every level, so siblings stay in
// creation order without re-sorting.
//
// A comment whose parent is not in the slice (deleted mid-listing, or cut off
// by the fetch limit) is an orphan and is dropped; partial threads are never
// rendered.
func buildTree(comments []domain.Comment) []*domain.CommentNode {
	nodes := make(map[uuid.UUID]*domain.CommentNode, len(comments))
	roots := make([]*domain.CommentNode, 0)

	for i := range comments {
		nodes[comments[i].ID] = &domain.CommentNode{Comment: comments[i]}
	}

	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].ParentCommentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*comments[i].ParentCommentID]
		if !ok {
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	// Replies hanging off an orphan stay attached to it and the orphan is
	// attached to nothing, so the whole detached subtree drops out here.
	return roots
}

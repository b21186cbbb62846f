package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment length bounds, enforced after trimming.
const (
	CommentMinLen = 1
	CommentMaxLen = 2000
)

// MaxRenderDepth is the renderer-facing nesting cutoff. Replies below this
// depth are still stored and returned; consumers stop expanding here.
const MaxRenderDepth = 3

// Comment is a single discussion entry on an idea. ParentCommentID nil means
// top-level; otherwise it references another comment on the same idea.
type Comment struct {
	ID              uuid.UUID
	IdeaID          uuid.UUID
	AuthorID        uuid.UUID
	ParentCommentID *uuid.UUID
	Content         string
	IsFlagged       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// AuthorName is populated at read time; see AuthorName.Source for how.
	Author AuthorName
}

// IsTopLevel reports whether the comment starts a thread. Only top-level
// comments contribute to the owning idea's comment_count.
func (c *Comment) IsTopLevel() bool {
	return c.ParentCommentID == nil
}

// AuthorSource records which branch produced a display name.
type AuthorSource string

const (
	// AuthorJoined: the name came with the comment row (read-time join).
	AuthorJoined AuthorSource = "joined"
	// AuthorLookup: the join carried no name; a secondary lookup resolved it.
	AuthorLookup AuthorSource = "lookup"
	// AuthorAnonymous: no name could be resolved at all.
	AuthorAnonymous AuthorSource = "anonymous"
)

// AnonymousLabel is shown when no display name resolves.
const AnonymousLabel = "Anonymous"

// AuthorName is the resolved display name of a comment author together with
// the branch that produced it, so each branch is testable on its own.
type AuthorName struct {
	Name   string
	Source AuthorSource
}

// Anonymous returns the fallback author name.
func Anonymous() AuthorName {
	return AuthorName{Name: AnonymousLabel, Source: AuthorAnonymous}
}

// CommentNode is a comment with its attached replies, ordered by creation time.
type CommentNode struct {
	Comment
	Replies []*CommentNode
}

package discussion

import (
	"strings"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// ListCommentsInput holds the parameters for listing an idea's discussion.
type ListCommentsInput struct {
	IdeaID uuid.UUID
}

// Validate checks all fields.
func (i ListCommentsInput) Validate() error {
	if i.IdeaID == uuid.Nil {
		return domain.NewValidationError("idea_id", "required")
	}
	return nil
}

// CreateCommentInput holds the parameters for creating a comment.
// ParentCommentID nil creates a top-level comment, otherwise a reply.
type CreateCommentInput struct {
	IdeaID          uuid.UUID
	ParentCommentID *uuid.UUID
	Content         string
}

// Validate checks all fields and collects all errors.
func (i CreateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "idea_id", Message: "required"})
	}
	if i.ParentCommentID != nil && *i.ParentCommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_comment_id", Message: "must not be the zero id"})
	}
	errs = append(errs, validateContent(i.Content)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCommentInput holds the parameters for editing a comment.
type UpdateCommentInput struct {
	CommentID uuid.UUID
	Content   string
}

// Validate checks all fields and collects all errors.
func (i UpdateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Content)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteCommentInput holds the parameters for deleting a comment thread.
type DeleteCommentInput struct {
	CommentID uuid.UUID
}

// Validate checks all fields.
func (i DeleteCommentInput) Validate() error {
	if i.CommentID == uuid.Nil {
		return domain.NewValidationError("comment_id", "required")
	}
	return nil
}

// FlagCommentInput holds the parameters for flagging a comment.
type FlagCommentInput struct {
	CommentID uuid.UUID
}

// Validate checks all fields.
func (i FlagCommentInput) Validate() error {
	if i.CommentID == uuid.Nil {
		return domain.NewValidationError("comment_id", "required")
	}
	return nil
}

func validateContent(content string) []domain.FieldError {
	var errs []domain.FieldError
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < domain.CommentMinLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(trimmed) > domain.CommentMaxLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 2000 characters"})
	}
	return errs
}

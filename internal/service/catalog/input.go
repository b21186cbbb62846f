package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/idea"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// ListIdeasInput holds the parameters for listing catalog ideas.
// Zero values mean "no filter" / defaults.
type ListIdeasInput struct {
	Category   *string
	Difficulty *string
	Search     *string
	Tools      []string
	Sort       string
	Page       int
	Limit      int
}

// Validate checks all fields and collects all errors. Unknown enum values are
// rejected rather than silently ignored.
func (i ListIdeasInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Difficulty != nil && !domain.Difficulty(*i.Difficulty).IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "unknown difficulty"})
	}
	if i.Sort != "" && !domain.SortKey(i.Sort).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort key"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must not be negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter converts the validated input into a repository filter for the tier.
func (i ListIdeasInput) filter(tier domain.Tier) idea.Filter {
	f := idea.Filter{
		Tier: tier,
		Sort: domain.SortKey(i.Sort),
		Page: domain.PageRequest{Page: i.Page, Limit: i.Limit},
	}

	if i.Category != nil {
		c := domain.Category(*i.Category)
		f.Category = &c
	}
	if i.Difficulty != nil {
		d := domain.Difficulty(*i.Difficulty)
		f.Difficulty = &d
	}
	if i.Search != nil {
		if s := strings.TrimSpace(*i.Search); s != "" {
			f.Search = &s
		}
	}
	for _, tool := range i.Tools {
		if t := strings.TrimSpace(tool); t != "" {
			f.Tools = append(f.Tools, t)
		}
	}

	return f
}

// GetIdeaInput holds the parameters for fetching a single idea.
type GetIdeaInput struct {
	IdeaID uuid.UUID
}

// Validate checks all fields.
func (i GetIdeaInput) Validate() error {
	if i.IdeaID == uuid.Nil {
		return domain.NewValidationError("idea_id", "required")
	}
	return nil
}

// RecordViewInput holds the parameters for recording an idea view.
type RecordViewInput struct {
	IdeaID uuid.UUID
}

// Validate checks all fields.
func (i RecordViewInput) Validate() error {
	if i.IdeaID == uuid.Nil {
		return domain.NewValidationError("idea_id", "required")
	}
	return nil
}

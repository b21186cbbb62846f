package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

// CreateProjectInput holds the parameters for submitting a project link.
type CreateProjectInput struct {
	IdeaID      uuid.UUID
	Title       string
	URL         string
	Description *string
	ToolsUsed   []string
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "idea_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(strings.TrimSpace(i.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if fe := validateProjectURL(i.URL); fe != nil {
		errs = append(errs, *fe)
	}
	if i.Description != nil && len(*i.Description) > domain.ProjectLinkDescriptionMaxLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for editing a project link.
// Nil pointer fields are left unchanged.
type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	Title       *string
	URL         *string
	Description *string // ptr("") clears
	ToolsUsed   []string
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Title == nil && i.URL == nil && i.Description == nil && i.ToolsUsed == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.URL != nil {
		if fe := validateProjectURL(*i.URL); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Description != nil && len(*i.Description) > domain.ProjectLinkDescriptionMaxLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteProjectInput holds the parameters for removing a project link.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// Validate checks all fields.
func (i DeleteProjectInput) Validate() error {
	if i.ProjectID == uuid.Nil {
		return domain.NewValidationError("project_id", "required")
	}
	return nil
}

// ListProjectsInput holds the parameters for listing an idea's projects.
type ListProjectsInput struct {
	IdeaID uuid.UUID
}

// Validate checks all fields.
func (i ListProjectsInput) Validate() error {
	if i.IdeaID == uuid.Nil {
		return domain.NewValidationError("idea_id", "required")
	}
	return nil
}

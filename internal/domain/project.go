package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectLinkDescriptionMaxLen bounds the optional description.
const ProjectLinkDescriptionMaxLen = 2000

// ProjectLink is a user-submitted build of an idea, pointing at the project
// elsewhere on the web. Mutable and deletable only by its author.
type ProjectLink struct {
	ID          uuid.UUID
	IdeaID      uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	URL         string
	Description *string
	ToolsUsed   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

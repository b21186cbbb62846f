package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by IdeaHandler.
type catalogService interface {
	ListIdeas(ctx context.Context, input catalog.ListIdeasInput) (*catalog.IdeaPage, error)
	GetIdea(ctx context.Context, input catalog.GetIdeaInput) (*catalog.IdeaDetail, error)
	RecordView(ctx context.Context, input catalog.RecordViewInput) (int, error)
}

// IdeaHandler serves catalog REST endpoints.
type IdeaHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc catalogService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "ideas")}
}

type ideaResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Description  string    `json:"description"`
	BuildGuide   *string   `json:"buildGuide,omitempty"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	Tools        []string  `json:"tools"`
	Tags         []string  `json:"tags"`
	FreeTier     bool      `json:"freeTier"`
	IsTeaser     bool      `json:"isTeaser"`
	ViewCount    int       `json:"viewCount"`
	CommentCount int       `json:"commentCount"`
	ProjectCount int       `json:"projectCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type pageMetaResponse struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type ideaListResponse struct {
	Ideas []ideaResponse   `json:"ideas"`
	Meta  pageMetaResponse `json:"meta"`
	Tier  string           `json:"tier"`
}

type ideaDetailResponse struct {
	Idea   ideaResponse `json:"idea"`
	Access string       `json:"access"`
}

type viewCountResponse struct {
	ViewCount int `json:"viewCount"`
}

// List handles GET /api/v1/ideas.
// Query: category, difficulty, search, tools (comma-separated), sort, page, limit.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := catalog.ListIdeasInput{
		Sort: q.Get("sort"),
	}
	if v := q.Get("category"); v != "" {
		input.Category = &v
	}
	if v := q.Get("difficulty"); v != "" {
		input.Difficulty = &v
	}
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	if v := q.Get("tools"); v != "" {
		for _, tool := range strings.Split(v, ",") {
			if tool = strings.TrimSpace(tool); tool != "" {
				input.Tools = append(input.Tools, tool)
			}
		}
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("page", "must be an integer"))
			return
		}
		input.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		input.Limit = n
	}

	page, err := h.svc.ListIdeas(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ideas := make([]ideaResponse, 0, len(page.Ideas))
	for i := range page.Ideas {
		ideas = append(ideas, toIdeaResponse(&page.Ideas[i]))
	}

	writeData(w, http.StatusOK, ideaListResponse{
		Ideas: ideas,
		Meta: pageMetaResponse{
			Total:       page.Meta.Total,
			Page:        page.Meta.Page,
			Limit:       page.Meta.Limit,
			TotalPages:  page.Meta.TotalPages,
			HasNextPage: page.Meta.HasNextPage,
			HasPrevPage: page.Meta.HasPrevPage,
		},
		Tier: string(page.Tier),
	})
}

// Get handles GET /api/v1/ideas/{id}.
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetIdea(r.Context(), catalog.GetIdeaInput{IdeaID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, ideaDetailResponse{
		Idea:   toIdeaResponse(&detail.Idea),
		Access: string(detail.Access),
	})
}

// RecordView handles POST /api/v1/ideas/{id}/view.
func (h *IdeaHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	count, err := h.svc.RecordView(r.Context(), catalog.RecordViewInput{IdeaID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, viewCountResponse{ViewCount: count})
}

func toIdeaResponse(i *domain.Idea) ideaResponse {
	return ideaResponse{
		ID:           i.ID.String(),
		Title:        i.Title,
		Summary:      i.Summary,
		Description:  i.Description,
		BuildGuide:   i.BuildGuide,
		Category:     i.Category.String(),
		Difficulty:   i.Difficulty.String(),
		Tools:        i.Tools,
		Tags:         i.Tags,
		FreeTier:     i.FreeTier,
		IsTeaser:     i.IsTeaser,
		ViewCount:    i.ViewCount,
		CommentCount: i.CommentCount,
		ProjectCount: i.ProjectCount,
		CreatedAt:    i.CreatedAt,
	}
}

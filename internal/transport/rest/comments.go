package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/domain"
	"github.com/buildhub-dev/buildhub-backend/internal/service/discussion"
)

// discussionService defines the minimal interface needed by CommentHandler.
type discussionService interface {
	ListComments(ctx context.Context, input discussion.ListCommentsInput) (*discussion.Discussion, error)
	CreateComment(ctx context.Context, input discussion.CreateCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input discussion.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, input discussion.DeleteCommentInput) (*discussion.DeleteResult, error)
	FlagComment(ctx context.Context, input discussion.FlagCommentInput) error
}

// CommentHandler serves discussion REST endpoints.
type CommentHandler struct {
	svc discussionService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc discussionService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comments")}
}

type commentResponse struct {
	ID              string            `json:"id"`
	IdeaID          string            `json:"ideaId"`
	ParentCommentID *string           `json:"parentCommentId,omitempty"`
	Content         string            `json:"content"`
	AuthorName      string            `json:"authorName"`
	IsFlagged       bool              `json:"isFlagged"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	Replies         []commentResponse `json:"replies,omitempty"`
}

type discussionResponse struct {
	Threads        []commentResponse `json:"threads"`
	Total          int               `json:"total"`
	MaxRenderDepth int               `json:"maxRenderDepth"`
}

type createCommentRequest struct {
	Content         string  `json:"content"`
	ParentCommentID *string `json:"parentCommentId,omitempty"`
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

type deleteCommentResponse struct {
	Deleted         int `json:"deleted"`
	TopLevelRemoved int `json:"topLevelRemoved"`
}

// List handles GET /api/v1/ideas/{id}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ideaID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	disc, err := h.svc.ListComments(r.Context(), discussion.ListCommentsInput{IdeaID: ideaID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	threads := make([]commentResponse, 0, len(disc.Threads))
	for _, node := range disc.Threads {
		threads = append(threads, toCommentResponse(node))
	}

	writeData(w, http.StatusOK, discussionResponse{
		Threads:        threads,
		Total:          disc.Total,
		MaxRenderDepth: disc.MaxRenderDepth,
	})
}

// Create handles POST /api/v1/ideas/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ideaID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	input := discussion.CreateCommentInput{
		IdeaID:  ideaID,
		Content: req.Content,
	}
	if req.ParentCommentID != nil {
		parentID, err := uuid.Parse(*req.ParentCommentID)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidation, "invalid parentCommentId")
			return
		}
		input.ParentCommentID = &parentID
	}

	comment, err := h.svc.CreateComment(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toCommentResponse(&domain.CommentNode{Comment: *comment}))
}

// Update handles PATCH /api/v1/comments/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "invalid request body")
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), discussion.UpdateCommentInput{
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toCommentResponse(&domain.CommentNode{Comment: *comment}))
}

// Delete handles DELETE /api/v1/comments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.svc.DeleteComment(r.Context(), discussion.DeleteCommentInput{CommentID: commentID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, deleteCommentResponse{
		Deleted:         result.Deleted,
		TopLevelRemoved: result.TopLevelRemoved,
	})
}

// Flag handles POST /api/v1/comments/{id}/flag.
func (h *CommentHandler) Flag(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.FlagComment(r.Context(), discussion.FlagCommentInput{CommentID: commentID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"status": "flagged"})
}

func toCommentResponse(node *domain.CommentNode) commentResponse {
	out := commentResponse{
		ID:         node.ID.String(),
		IdeaID:     node.IdeaID.String(),
		Content:    node.Content,
		AuthorName: node.Author.Name,
		IsFlagged:  node.IsFlagged,
		CreatedAt:  node.CreatedAt,
		UpdatedAt:  node.UpdatedAt,
	}
	if node.ParentCommentID != nil {
		s := node.ParentCommentID.String()
		out.ParentCommentID = &s
	}
	for _, reply := range node.Replies {
		out.Replies = append(out.Replies, toCommentResponse(reply))
	}
	return out
}

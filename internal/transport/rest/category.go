package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habits-backend/internal/domain"
	"github.com/heartmarshall/habits-backend/internal/service/category"
)

type categoryService interface {
	Create(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, input category.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryHandler serves the /category/v1 endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryRequest struct {
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

const msgCategoryNotFound = "Category not found"

// Create handles POST /category/v1/create.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateInput{Name: req.Name, Icon: req.Icon})
	if err != nil {
		handleError(w, r, h.log, "create category", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Category Created", map[string]any{
		"category": toCategoryResponse(*c),
	})
}

// List handles GET /category/v1/fetch.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, "fetch categories", err)
		return
	}

	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}

	writeSuccess(w, http.StatusOK, "Categories fetched successfully", map[string]any{
		"categories": out,
	})
}

// Update handles PUT /category/v1/update/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgCategoryNotFound)
	if !ok {
		return
	}
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Update(r.Context(), category.UpdateInput{
		CategoryID: id,
		Name:       req.Name,
		Icon:       req.Icon,
	})
	if err != nil {
		handleError(w, r, h.log, "update category", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Category updated", map[string]any{
		"category": toCategoryResponse(*c),
	})
}

// Delete handles DELETE /category/v1/delete/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, msgCategoryNotFound)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, "delete category", err)
		return
	}

	writeSuccess(w, http.StatusOK, "Category deleted", nil)
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID.String(), Name: c.Name, Icon: c.Icon}
}

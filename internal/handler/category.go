package handler

import (
	"net/http"

	"github.com/osse101/MonoCollector_Go/internal/category"
)

// CreateCategoryRequest creates a custom category. The id is derived from
// the name when omitted.
type CreateCategoryRequest struct {
	ID    string `json:"id" validate:"omitempty,max=64"`
	Name  string `json:"name" validate:"required,max=50"`
	Icon  string `json:"icon" validate:"max=8"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest changes display fields; omitted fields are kept
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=50"`
	Icon  *string `json:"icon" validate:"omitempty,max=8"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// CategoryHandler serves category routes
type CategoryHandler struct {
	categoryService category.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// HandleListCategories lists default and custom categories with item counts
// @Summary List categories
// @Tags categories
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {array} domain.Category
// @Router /api/v1/categories [get]
func (h *CategoryHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context(), currentUserID(r))
	if err != nil {
		respondServiceError(w, r, "List categories", err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// HandleCreateCategory creates a custom category
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} domain.Category
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/categories [post]
func (h *CategoryHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create category"); err != nil {
		return
	}

	c, err := h.categoryService.CreateCategory(r.Context(), currentUserID(r), category.CreateInput{
		ID:    req.ID,
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondServiceError(w, r, "Create category", err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// HandleUpdateCategory updates a custom category
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Category id"
// @Param request body UpdateCategoryRequest true "Changes"
// @Success 200 {object} domain.Category
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update category"); err != nil {
		return
	}

	c, err := h.categoryService.UpdateCategory(r.Context(), currentUserID(r), pathID(r, "id"), category.UpdateInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		respondServiceError(w, r, "Update category", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleDeleteCategory deletes a custom category; its items move to "other"
// @Summary Delete category
// @Tags categories
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Category id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryService.DeleteCategory(r.Context(), currentUserID(r), pathID(r, "id")); err != nil {
		respondServiceError(w, r, "Delete category", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCategoryDeleted})
}

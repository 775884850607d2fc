package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/item"
	"github.com/osse101/MonoCollector_Go/internal/logger"
)

// Image response headers
const (
	HeaderImageBlurHash = "X-Image-Blurhash"
	HeaderImageWidth    = "X-Image-Width"
	HeaderImageHeight   = "X-Image-Height"

	// imageFormField is the multipart field carrying an uploaded photo
	imageFormField = "image"
)

// CreateItemRequest registers an item
type CreateItemRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Category     string   `json:"category" validate:"max=64"`
	Location     string   `json:"location" validate:"max=100"`
	Tags         []string `json:"tags" validate:"max=10,dive,max=30"`
	Notes        string   `json:"notes" validate:"max=1000"`
	IsCollected  bool     `json:"is_collected"`
	GenerateIcon bool     `json:"generate_icon"`
}

// UpdateItemRequest is a partial update; omitted fields are kept
type UpdateItemRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string  `json:"category" validate:"omitempty,min=1,max=64"`
	Location    *string  `json:"location" validate:"omitempty,max=100"`
	Tags        []string `json:"tags" validate:"omitempty,max=10,dive,max=30"`
	Notes       *string  `json:"notes" validate:"omitempty,max=1000"`
	IsCollected *bool    `json:"is_collected"`
}

// SetCollectedRequest flips the collected flag
type SetCollectedRequest struct {
	IsCollected *bool `json:"is_collected" validate:"required"`
}

// GenerateIconRequest picks the icon generator
type GenerateIconRequest struct {
	Source string `json:"source" validate:"required,iconsource"`
}

// ItemHandler serves item routes
type ItemHandler struct {
	itemService   item.Service
	maxImageBytes int64
}

// NewItemHandler creates a new item handler. Uploads are read up to one byte
// past maxImageBytes so the service can reject oversized images.
func NewItemHandler(itemService item.Service, maxImageBytes int64) *ItemHandler {
	if maxImageBytes <= 0 {
		maxImageBytes = item.DefaultMaxImageBytes
	}
	return &ItemHandler{itemService: itemService, maxImageBytes: maxImageBytes}
}

// HandleListItems lists the caller's items newest first
// @Summary List items
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param category query string false "Category id"
// @Param collected query bool false "Collected flag"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.Item
// @Router /api/v1/items [get]
func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	collected, ok := GetOptionalBoolQueryParam(r, w, "collected")
	if !ok {
		return
	}
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", 0)
	if !ok {
		return
	}
	offset, ok := GetOptionalIntQueryParam(r, w, "offset", 0)
	if !ok {
		return
	}

	items, err := h.itemService.ListItems(r.Context(), currentUserID(r), domain.ItemFilter{
		Category:    r.URL.Query().Get("category"),
		IsCollected: collected,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		respondServiceError(w, r, "List items", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleCreateItem registers an item
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body CreateItemRequest true "Item"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items [post]
func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
		return
	}

	created, err := h.itemService.CreateItem(r.Context(), currentUserID(r), item.CreateInput{
		Name:         req.Name,
		Category:     req.Category,
		Location:     req.Location,
		Tags:         req.Tags,
		Notes:        req.Notes,
		IsCollected:  req.IsCollected,
		GenerateIcon: req.GenerateIcon,
	})
	if err != nil {
		respondServiceError(w, r, "Create item", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// HandleGetItem returns one item
// @Summary Get item
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.itemService.GetItem(r.Context(), currentUserID(r), pathID(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}
	respondJSON(w, http.StatusOK, it)
}

// HandleUpdateItem applies a partial update
// @Summary Update item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Param request body UpdateItemRequest true "Changes"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [patch]
func (h *ItemHandler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
		return
	}

	updated, err := h.itemService.UpdateItem(r.Context(), currentUserID(r), pathID(r, "id"), domain.ItemUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Tags:        req.Tags,
		Notes:       req.Notes,
		IsCollected: req.IsCollected,
	})
	if err != nil {
		respondServiceError(w, r, "Update item", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// HandleDeleteItem deletes an item and its image
// @Summary Delete item
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [delete]
func (h *ItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.itemService.DeleteItem(r.Context(), currentUserID(r), pathID(r, "id")); err != nil {
		respondServiceError(w, r, "Delete item", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemDeleted})
}

// HandleSetCollected marks an item as let go (or not)
// @Summary Set collected flag
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Param request body SetCollectedRequest true "Flag"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/collected [post]
func (h *ItemHandler) HandleSetCollected(w http.ResponseWriter, r *http.Request) {
	var req SetCollectedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set collected"); err != nil {
		return
	}

	updated, err := h.itemService.SetCollected(r.Context(), currentUserID(r), pathID(r, "id"), *req.IsCollected)
	if err != nil {
		respondServiceError(w, r, "Set collected", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// HandleUploadImage stores the item photo. The body is either the raw image
// bytes or a multipart form with an "image" file field.
// @Summary Upload item image
// @Tags items
// @Accept image/jpeg,image/png,image/gif,image/webp,multipart/form-data
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Success 200 {object} domain.ItemImage
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /api/v1/items/{id}/image [put]
func (h *ItemHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	data, err := h.readImage(r)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			respondError(w, http.StatusBadRequest, ErrMsgMissingImage)
			return
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondServiceError(w, r, "Upload image", domain.ErrImageTooLarge)
			return
		}
		logger.FromContext(r.Context()).Warn("Failed to read image upload", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadImageFailed)
		return
	}

	img, err := h.itemService.UploadImage(r.Context(), currentUserID(r), pathID(r, "id"), data)
	if err != nil {
		respondServiceError(w, r, "Upload image", err)
		return
	}
	respondJSON(w, http.StatusOK, img)
}

func (h *ItemHandler) readImage(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(io.LimitReader(r.Body, h.maxImageBytes+1))
	}

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
}

// HandleGetImage streams the item photo
// @Summary Get item image
// @Tags items
// @Produce image/jpeg,image/png,image/gif,image/webp
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/image [get]
func (h *ItemHandler) HandleGetImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.itemService.GetImage(r.Context(), currentUserID(r), pathID(r, "id"))
	if err != nil {
		respondServiceError(w, r, "Get image", err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.Header().Set(HeaderImageBlurHash, img.BlurHash)
	w.Header().Set(HeaderImageWidth, strconv.Itoa(img.Width))
	w.Header().Set(HeaderImageHeight, strconv.Itoa(img.Height))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

// HandleDeleteImage removes the item photo
// @Summary Delete item image
// @Tags items
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/image [delete]
func (h *ItemHandler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	if err := h.itemService.DeleteImage(r.Context(), currentUserID(r), pathID(r, "id")); err != nil {
		respondServiceError(w, r, "Delete image", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgImageDeleted})
}

// HandleGenerateIcon regenerates the item icon from its name or photo
// @Summary Generate item icon
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param id path string true "Item id"
// @Param request body GenerateIconRequest true "Icon source"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id}/icon [post]
func (h *ItemHandler) HandleGenerateIcon(w http.ResponseWriter, r *http.Request) {
	var req GenerateIconRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate icon"); err != nil {
		return
	}

	updated, err := h.itemService.GenerateIcon(r.Context(), currentUserID(r), pathID(r, "id"), domain.IconSource(req.Source))
	if err != nil {
		respondServiceError(w, r, "Generate icon", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

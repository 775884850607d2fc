package handler

import (
	"net/http"

	"github.com/osse101/MonoCollector_Go/internal/user"
)

// CreateGuestRequest is the optional body of POST /users/guest
type CreateGuestRequest struct {
	DisplayName string `json:"display_name" validate:"max=50"`
}

// LinkAccountRequest links an identity provider account to the caller
type LinkAccountRequest struct {
	Provider          string `json:"provider" validate:"required,provider"`
	ProviderAccountID string `json:"provider_account_id" validate:"required,max=255"`
}

// UserHandler serves user and account link routes
type UserHandler struct {
	userService user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// HandleCreateGuest creates a guest user
// @Summary Create guest user
// @Description Creates a guest account with a generated guest code. The display name is optional.
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateGuestRequest false "Guest details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/users/guest [post]
func (h *UserHandler) HandleCreateGuest(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestRequest
	if err := DecodeOptionalRequest(r, w, &req, "Create guest"); err != nil {
		return
	}

	u, err := h.userService.CreateGuest(r.Context(), req.DisplayName)
	if err != nil {
		respondServiceError(w, r, "Create guest", err)
		return
	}
	respondJSON(w, http.StatusCreated, u)
}

// HandleGetMe returns the caller with its account links
// @Summary Get current user
// @Tags users
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.GetUser(r.Context(), currentUserID(r))
	if err != nil {
		respondServiceError(w, r, "Get user", err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// HandleLinkAccount links a provider account to the caller
// @Summary Link account
// @Description Links an identity provider account. Linking clears the guest flag.
// @Tags users
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body LinkAccountRequest true "Provider account"
// @Success 201 {object} domain.AccountLink
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/users/me/links [post]
func (h *UserHandler) HandleLinkAccount(w http.ResponseWriter, r *http.Request) {
	var req LinkAccountRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Link account"); err != nil {
		return
	}

	link, err := h.userService.LinkAccount(r.Context(), currentUserID(r), req.Provider, req.ProviderAccountID)
	if err != nil {
		respondServiceError(w, r, "Link account", err)
		return
	}
	respondJSON(w, http.StatusCreated, link)
}

// HandleListLinks lists the caller's provider links
// @Summary List account links
// @Tags users
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {array} domain.AccountLink
// @Router /api/v1/users/me/links [get]
func (h *UserHandler) HandleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.userService.ListLinks(r.Context(), currentUserID(r))
	if err != nil {
		respondServiceError(w, r, "List links", err)
		return
	}
	respondJSON(w, http.StatusOK, links)
}

// HandleUnlink removes one provider link
// @Summary Unlink account
// @Tags users
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param provider path string true "Provider"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/me/links/{provider} [delete]
func (h *UserHandler) HandleUnlink(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.UnlinkAccount(r.Context(), currentUserID(r), pathID(r, "provider")); err != nil {
		respondServiceError(w, r, "Unlink account", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAccountUnlinked})
}

package applynow

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/loanboard/cms/internal/response"
)

// MsgSaved is returned by every successful write.
const MsgSaved = "Apply Now settings updated successfully"

// Handler serves the admin apply-now endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new admin apply-now Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Get godoc
//
//	@Summary		Get apply-now settings
//	@Description	Returns the settings document of the scope, creating the default one on first access.
//	@Tags			admin-apply-now
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	SettingsEnvelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/admin/apply-now [get]
//	@Router			/admin/apply-now/usa [get]
//	@Router			/admin/apply-now/india [get]
func (h *Handler) Get(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.svc.Get(r.Context(), scope)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		response.OK(w, r, "", response.Fields{"applyNow": settings})
	}
}

// Set godoc
//
//	@Summary		Create or replace apply-now settings
//	@Description	isActive is required; description is optional.
//	@Tags			admin-apply-now
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		SetRequest	true	"Settings"
//	@Success		201		{object}	SettingsEnvelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/admin/apply-now [post]
//	@Router			/admin/apply-now/usa [post]
//	@Router			/admin/apply-now/india [post]
func (h *Handler) Set(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "Invalid request body")
			return
		}

		settings, err := h.svc.Set(r.Context(), scope, req)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		response.Created(w, r, MsgSaved, response.Fields{"applyNow": settings})
	}
}

// Update godoc
//
//	@Summary		Update apply-now settings
//	@Description	Only the supplied fields change.
//	@Tags			admin-apply-now
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		UpdateRequest	true	"Fields to change"
//	@Success		200		{object}	SettingsEnvelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/admin/apply-now [put]
//	@Router			/admin/apply-now/usa [put]
//	@Router			/admin/apply-now/india [put]
func (h *Handler) Update(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "Invalid request body")
			return
		}

		settings, err := h.svc.Update(r.Context(), scope, req)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		response.OK(w, r, MsgSaved, response.Fields{"applyNow": settings})
	}
}

// PublicHandler serves the read-only apply-now status.
type PublicHandler struct {
	svc *Service
}

// NewPublicHandler creates a new public apply-now handler.
func NewPublicHandler(svc *Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// Get godoc
//
//	@Summary		Get apply-now status
//	@Description	Returns whether "apply now" is enabled for the scope. description is null when empty.
//	@Tags			apply-now
//	@Produce		json
//	@Success		200	{object}	PublicEnvelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/apply-now [get]
//	@Router			/apply-now/usa [get]
//	@Router			/apply-now/india [get]
func (h *PublicHandler) Get(scope Scope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.svc.Public(r.Context(), scope)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		response.OK(w, r, "", response.Fields{
			"isActive":    p.IsActive,
			"description": p.Description,
		})
	}
}

// SettingsEnvelope documents the admin response shape.
type SettingsEnvelope struct {
	Success  bool      `json:"success" example:"true"`
	Message  string    `json:"message,omitempty" example:"Apply Now settings updated successfully"`
	ApplyNow *Settings `json:"applyNow"`
}

// PublicEnvelope documents the public response shape.
type PublicEnvelope struct {
	Success bool `json:"success" example:"true"`
	PublicSettings
}

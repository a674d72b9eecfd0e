package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/loanboard/cms/internal/response"
)

// Handler serves the admin category endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new admin category Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List godoc
//
//	@Summary		List categories
//	@Description	Returns every category, newest first.
//	@Tags			admin-categories
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	ListEnvelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/admin/categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(cats), "categories": cats})
}

// Create godoc
//
//	@Summary		Create category
//	@Tags			admin-categories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		CreateRequest	true	"Category"
//	@Success		201		{object}	ItemEnvelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/admin/categories [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.Created(w, r, MsgCreated, response.Fields{"category": c})
}

// Get godoc
//
//	@Summary	Get category
//	@Tags		admin-categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Category ID"
//	@Success	200	{object}	ItemEnvelope
//	@Failure	401	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/categories/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"category": c})
}

// Update godoc
//
//	@Summary		Update category
//	@Description	Only the supplied fields change. A new name must not be used by another category.
//	@Tags			admin-categories
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string			true	"Category ID"
//	@Param			body	body		UpdateRequest	true	"Fields to change"
//	@Success		200		{object}	ItemEnvelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Router			/admin/categories/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, MsgUpdated, response.Fields{"category": c})
}

// Delete godoc
//
//	@Summary		Delete category
//	@Description	Refused while any loan is assigned to the category.
//	@Tags			admin-categories
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Category ID"
//	@Success		200	{object}	response.Envelope
//	@Failure		400	{object}	response.Envelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Router			/admin/categories/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, MsgDeleted, nil)
}

// PublicHandler serves the read-only category endpoints.
type PublicHandler struct {
	svc *Service
}

// NewPublicHandler creates a new public category handler.
func NewPublicHandler(svc *Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// List godoc
//
//	@Summary		List active categories
//	@Description	Active categories sorted by name, each with the number of active loans.
//	@Tags			categories
//	@Produce		json
//	@Success		200	{object}	PublicListEnvelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/categories [get]
func (h *PublicHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.PublicList(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(cats), "categories": cats})
}

// Get godoc
//
//	@Summary	Get active category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID"
//	@Success	200	{object}	PublicItemEnvelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/categories/{id} [get]
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.PublicGet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"category": c})
}

// ListEnvelope documents the admin list response.
type ListEnvelope struct {
	Success    bool       `json:"success" example:"true"`
	Count      int        `json:"count" example:"1"`
	Categories []Category `json:"categories"`
}

// ItemEnvelope documents the admin single-item response.
type ItemEnvelope struct {
	Success  bool      `json:"success" example:"true"`
	Message  string    `json:"message,omitempty" example:"Category created successfully"`
	Category *Category `json:"category"`
}

// PublicListEnvelope documents the public list response.
type PublicListEnvelope struct {
	Success    bool             `json:"success" example:"true"`
	Count      int              `json:"count" example:"1"`
	Categories []PublicCategory `json:"categories"`
}

// PublicItemEnvelope documents the public single-item response.
type PublicItemEnvelope struct {
	Success  bool            `json:"success" example:"true"`
	Category *PublicCategory `json:"category"`
}

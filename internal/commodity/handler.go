package commodity

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/loanboard/cms/internal/response"
)

// Handler serves the admin commodity price endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new admin commodity price Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func listQuery(r *http.Request) ListQuery {
	q := r.URL.Query()
	return ListQuery{
		CommodityType: q.Get("commodityType"),
		State:         q.Get("state"),
		City:          q.Get("city"),
		IsActive:      q.Get("isActive"),
	}
}

// List godoc
//
//	@Summary		List commodity prices
//	@Description	state and city match case-insensitive substrings.
//	@Tags			admin-commodity-prices
//	@Produce		json
//	@Security		BearerAuth
//	@Param			commodityType	query		string	false	"Commodity type"	Enums(Silver, INR, Petrol, Diesel, LP Gas)
//	@Param			state			query		string	false	"State"
//	@Param			city			query		string	false	"City"
//	@Param			isActive		query		bool	false	"Active flag"
//	@Success		200				{object}	ListEnvelope
//	@Failure		400				{object}	response.Envelope
//	@Failure		401				{object}	response.Envelope
//	@Router			/admin/commodity-prices [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f, err := listQuery(r).Filter()
	if err != nil {
		response.Error(w, r, err)
		return
	}

	prices, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(prices), "commodityPrices": prices})
}

// Create godoc
//
//	@Summary	Create commodity price
//	@Tags		admin-commodity-prices
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		CreateRequest	true	"Commodity price"
//	@Success	201		{object}	ItemEnvelope
//	@Failure	400		{object}	response.Envelope
//	@Failure	401		{object}	response.Envelope
//	@Router		/admin/commodity-prices [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.Created(w, r, MsgCreated, response.Fields{"commodityPrice": p})
}

// Get godoc
//
//	@Summary	Get commodity price
//	@Tags		admin-commodity-prices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Commodity price ID"
//	@Success	200	{object}	ItemEnvelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/commodity-prices/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"commodityPrice": p})
}

// Update godoc
//
//	@Summary		Update commodity price
//	@Description	Only the supplied fields change. The resulting (type, state, city) must not belong to another price.
//	@Tags			admin-commodity-prices
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string			true	"Commodity price ID"
//	@Param			body	body		UpdateRequest	true	"Fields to change"
//	@Success		200		{object}	ItemEnvelope
//	@Failure		400		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Router			/admin/commodity-prices/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, r, "Invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, MsgUpdated, response.Fields{"commodityPrice": p})
}

// Delete godoc
//
//	@Summary	Delete commodity price
//	@Tags		admin-commodity-prices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Commodity price ID"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/commodity-prices/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, MsgDeleted, nil)
}

// PublicHandler serves the read-only commodity price endpoints.
type PublicHandler struct {
	svc *Service
}

// NewPublicHandler creates a new public commodity price handler.
func NewPublicHandler(svc *Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// List godoc
//
//	@Summary	List active commodity prices
//	@Tags		commodity-prices
//	@Produce	json
//	@Param		commodityType	query		string	false	"Commodity type"	Enums(Silver, INR, Petrol, Diesel, LP Gas)
//	@Param		state			query		string	false	"State"
//	@Param		city			query		string	false	"City"
//	@Success	200				{object}	ListEnvelope
//	@Failure	400				{object}	response.Envelope
//	@Router		/commodity-prices [get]
func (h *PublicHandler) List(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	q.IsActive = ""
	f, err := q.Filter()
	if err != nil {
		response.Error(w, r, err)
		return
	}

	prices, err := h.svc.PublicList(r.Context(), f)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(prices), "commodityPrices": prices})
}

// Grouped godoc
//
//	@Summary		Active commodity prices by state and city
//	@Description	States and cities are grouped ignoring case.
//	@Tags			commodity-prices
//	@Produce		json
//	@Success		200	{object}	GroupedEnvelope
//	@Router			/commodity-prices/grouped [get]
func (h *PublicHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	groups, count, err := h.svc.Grouped(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": count, "statesCount": len(groups), "data": groups})
}

// ByType godoc
//
//	@Summary	Active commodity prices of one type
//	@Tags		commodity-prices
//	@Produce	json
//	@Param		commodityType	path		string	true	"Commodity type"	Enums(Silver, INR, Petrol, Diesel, LP Gas)
//	@Param		state			query		string	false	"State"
//	@Param		city			query		string	false	"City"
//	@Success	200				{object}	TypeEnvelope
//	@Failure	400				{object}	response.Envelope
//	@Router		/commodity-prices/type/{commodityType} [get]
func (h *PublicHandler) ByType(w http.ResponseWriter, r *http.Request) {
	t := Type(chi.URLParam(r, "commodityType"))
	prices, err := h.svc.ByType(r.Context(), t, r.URL.Query().Get("state"), r.URL.Query().Get("city"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(prices), "commodityType": t, "commodityPrices": prices})
}

// Get godoc
//
//	@Summary	Get active commodity price
//	@Tags		commodity-prices
//	@Produce	json
//	@Param		id	path		string	true	"Commodity price ID"
//	@Success	200	{object}	ItemEnvelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/commodity-prices/{id} [get]
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.PublicGet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"commodityPrice": p})
}

// ListEnvelope documents the list responses.
type ListEnvelope struct {
	Success         bool    `json:"success" example:"true"`
	Count           int     `json:"count" example:"1"`
	CommodityPrices []Price `json:"commodityPrices"`
}

// ItemEnvelope documents the single-item responses.
type ItemEnvelope struct {
	Success        bool   `json:"success" example:"true"`
	Message        string `json:"message,omitempty" example:"Commodity price created successfully"`
	CommodityPrice *Price `json:"commodityPrice"`
}

// GroupedEnvelope documents the grouped response.
type GroupedEnvelope struct {
	Success     bool         `json:"success" example:"true"`
	Count       int          `json:"count" example:"2"`
	StatesCount int          `json:"statesCount" example:"1"`
	Data        []StateGroup `json:"data"`
}

// TypeEnvelope documents the by-type response.
type TypeEnvelope struct {
	Success         bool    `json:"success" example:"true"`
	Count           int     `json:"count" example:"1"`
	CommodityType   Type    `json:"commodityType" example:"Petrol"`
	CommodityPrices []Price `json:"commodityPrices"`
}

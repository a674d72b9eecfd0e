package loan

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/loanboard/cms/internal/apperror"
	"github.com/loanboard/cms/internal/category"
	"github.com/loanboard/cms/internal/response"
	"github.com/loanboard/cms/internal/validation"
)

// LogoField is the multipart field carrying the bank logo.
const LogoField = "bankLogo"

// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
const multipartMemory = 8 << 20

// formOverhead is the room left for text fields and part headers on top of the logo limit.
const formOverhead = 1 << 20

var (
	errBadBoolean   = validation.Field("isActive", "boolean", "Is active must be true or false")
	errBodyTooLarge = apperror.Validation(MsgTooLarge, apperror.FieldError{Field: LogoField, Tag: "max", Message: MsgTooLarge})
)

// Handler serves the admin loan endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new admin loan Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List godoc
//
//	@Summary	List loans
//	@Tags		admin-loans
//	@Produce	json
//	@Security	BearerAuth
//	@Param		category	query		string	false	"Category ID"
//	@Success	200			{object}	ListEnvelope
//	@Failure	401			{object}	response.Envelope
//	@Router		/admin/loans [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(loans), "loans": loans})
}

// Create godoc
//
//	@Summary		Create loan
//	@Description	Accepts JSON, or multipart/form-data with an optional bankLogo image (jpeg, png, gif, webp).
//	@Tags			admin-loans
//	@Accept			json,mpfd
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body		body		CreateRequest	false	"Loan (JSON requests)"
//	@Param			bankLogo	formData	file			false	"Bank logo"
//	@Success		201			{object}	ItemEnvelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/admin/loans [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	logo, err := decode(w, r, h.svc.maxUpload+formOverhead, &req, req.bindForm)
	if err != nil {
		badBody(w, r, err)
		return
	}
	if logo != nil {
		defer logo.Close()
	}

	l, err := h.svc.Create(r.Context(), req, logo)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.Created(w, r, MsgCreated, response.Fields{"loan": l})
}

// Get godoc
//
//	@Summary	Get loan
//	@Tags		admin-loans
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Loan ID"
//	@Success	200	{object}	ItemEnvelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/loans/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"loan": l})
}

// Update godoc
//
//	@Summary		Update loan
//	@Description	Only the supplied fields change. A new bankLogo replaces the stored one.
//	@Tags			admin-loans
//	@Accept			json,mpfd
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		string			true	"Loan ID"
//	@Param			body		body		UpdateRequest	false	"Fields to change (JSON requests)"
//	@Param			bankLogo	formData	file			false	"Bank logo"
//	@Success		200			{object}	ItemEnvelope
//	@Failure		400			{object}	response.Envelope
//	@Failure		404			{object}	response.Envelope
//	@Failure		500			{object}	response.Envelope
//	@Router			/admin/loans/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	logo, err := decode(w, r, h.svc.maxUpload+formOverhead, &req, req.bindForm)
	if err != nil {
		badBody(w, r, err)
		return
	}
	if logo != nil {
		defer logo.Close()
	}

	l, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req, logo)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, MsgUpdated, response.Fields{"loan": l})
}

// Delete godoc
//
//	@Summary	Delete loan
//	@Tags		admin-loans
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Loan ID"
//	@Success	200	{object}	response.Envelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/admin/loans/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, MsgDeleted, nil)
}

// PublicHandler serves the read-only loan endpoints.
type PublicHandler struct {
	svc *Service
}

// NewPublicHandler creates a new public loan handler.
func NewPublicHandler(svc *Service) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// List godoc
//
//	@Summary	List active loans
//	@Tags		loans
//	@Produce	json
//	@Param		category	query		string	false	"Category ID"
//	@Success	200			{object}	ListEnvelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/loans [get]
func (h *PublicHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.PublicList(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(loans), "loans": loans})
}

// ByCategory godoc
//
//	@Summary	Active loans of an active category
//	@Tags		loans
//	@Produce	json
//	@Param		categoryId	path		string	true	"Category ID"
//	@Success	200			{object}	CategoryEnvelope
//	@Failure	404			{object}	response.Envelope
//	@Router		/loans/category/{categoryId} [get]
func (h *PublicHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	cat, loans, err := h.svc.ByCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"count": len(loans), "category": cat, "loans": loans})
}

// Get godoc
//
//	@Summary	Get active loan
//	@Tags		loans
//	@Produce	json
//	@Param		id	path		string	true	"Loan ID"
//	@Success	200	{object}	ItemEnvelope
//	@Failure	404	{object}	response.Envelope
//	@Router		/loans/{id} [get]
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.PublicGet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.OK(w, r, "", response.Fields{"loan": l})
}

// decode reads a JSON body into dst, or a multipart form through bind. Only multipart
// requests can carry a logo; their body is refused past limit bytes.
func decode(w http.ResponseWriter, r *http.Request, limit int64, dst interface{}, bind func(url.Values) error) (*Upload, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return nil, render.DecodeJSON(r.Body, dst)
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}
	if err := bind(r.PostForm); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile(LogoField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &Upload{Filename: header.Filename, ContentType: header.Header.Get("Content-Type"), Body: file}, nil
}

// badBody reports a body that could not be decoded. Bind and size errors carry their own message.
func badBody(w http.ResponseWriter, r *http.Request, err error) {
	if apperror.Is(err, apperror.KindValidation) {
		response.Error(w, r, err)
		return
	}
	response.BadRequest(w, r, "Invalid request body")
}

func (req *CreateRequest) bindForm(form url.Values) error {
	req.Category = form.Get("category")
	req.LoanTitle = form.Get("loanTitle")
	req.LoanCompany = form.Get("loanCompany")
	req.BankName = form.Get("bankName")
	req.LoanDescription = form.Get("loanDescription")
	req.LoanQuote = form.Get("loanQuote")
	req.Link = form.Get("link")

	active, err := formBool(form, "isActive")
	if err != nil {
		return err
	}
	req.IsActive = active
	return nil
}

func (req *UpdateRequest) bindForm(form url.Values) error {
	req.Category = formString(form, "category")
	req.LoanTitle = formString(form, "loanTitle")
	req.LoanCompany = formString(form, "loanCompany")
	req.BankName = formString(form, "bankName")
	req.LoanDescription = formString(form, "loanDescription")
	req.LoanQuote = formString(form, "loanQuote")
	req.Link = formString(form, "link")

	active, err := formBool(form, "isActive")
	if err != nil {
		return err
	}
	req.IsActive = active
	return nil
}

// formString returns the value of key, or nil when the form does not carry it.
func formString(form url.Values, key string) *string {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}

func formBool(form url.Values, key string) (*bool, error) {
	s := formString(form, key)
	if s == nil || *s == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(*s)
	if err != nil {
		return nil, errBadBoolean
	}
	return &b, nil
}

// ListEnvelope documents the list responses.
type ListEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Count   int    `json:"count" example:"1"`
	Loans   []Loan `json:"loans"`
}

// ItemEnvelope documents the single-item responses.
type ItemEnvelope struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Loan created successfully"`
	Loan    *Loan  `json:"loan"`
}

// CategoryEnvelope documents the by-category response.
type CategoryEnvelope struct {
	Success  bool             `json:"success" example:"true"`
	Count    int              `json:"count" example:"1"`
	Category category.Summary `json:"category"`
	Loans    []Loan           `json:"loans"`
}

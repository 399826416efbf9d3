package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/joinboard/backend/api/transport"
	"github.com/joinboard/backend/pkg/httpcontext"
	contactUC "github.com/joinboard/backend/usecase/contact"
)

type ContactHandler struct {
	baseHandler
	uc *contactUC.UseCase
}

func NewContactHandler(uc *contactUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List contacts
// @Tags contacts
// @Router /contacts/ [get]
func (h *ContactHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contacts, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err, "could not list contacts")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewContactResponses(contacts), "")
}

// @Summary Create contact
// @Tags contacts
// @Router /contacts/ [post]
func (h *ContactHandler) Create(ctx *fasthttp.RequestCtx) {
	in, ok := h.parseContact(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contact, err := h.uc.Create(stdCtx, h.actor(ctx), in)
	if err != nil {
		h.respondError(ctx, err, "contact not created, an error occurred")
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewContactResponse(*contact), "contact successfully created")
}

// @Summary Get a single contact
// @Tags contacts
// @Router /contacts/{id}/ [get]
func (h *ContactHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contact, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err, "contact not found")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewContactResponse(*contact), "")
}

// @Summary Update contact
// @Tags contacts
// @Router /contacts/{id}/ [put]
func (h *ContactHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	in, ok := h.parseContact(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contact, err := h.uc.Update(stdCtx, h.actor(ctx), id, in)
	if err != nil {
		h.respondError(ctx, err, "error while updating the contact")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewContactResponse(*contact), "contact successfully updated")
}

// @Summary Delete contact
// @Tags contacts
// @Router /contacts/{id}/ [delete]
func (h *ContactHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contact, err := h.uc.Delete(stdCtx, h.actor(ctx), id)
	if err != nil {
		h.respondError(ctx, err, "error while deleting the contact")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewContactResponse(*contact), "contact successfully deleted")
}

func (h *ContactHandler) parseContact(ctx *fasthttp.RequestCtx) (contactUC.Input, bool) {
	var req transport.ContactRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Failure(nil, "invalid payload"))
		return contactUC.Input{}, false
	}
	return contactUC.Input{
		UserID:     req.User,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		BadgeColor: req.BadgeColor,
	}, true
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/joinboard/backend/api/transport"
	"github.com/joinboard/backend/pkg/httpcontext"
	subtaskUC "github.com/joinboard/backend/usecase/subtask"
)

type SubtaskHandler struct {
	baseHandler
	uc *subtaskUC.UseCase
}

func NewSubtaskHandler(uc *subtaskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SubtaskHandler {
	return &SubtaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List subtasks
// @Tags subtasks
// @Router /subtasks/ [get]
func (h *SubtaskHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtasks, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err, "could not list subtasks")
		return
	}

	responses := make([]transport.SubtaskResponse, 0, len(subtasks))
	for _, s := range subtasks {
		responses = append(responses, transport.NewSubtaskResponse(s))
	}
	h.respondSuccess(ctx, http.StatusOK, responses, "")
}

// @Summary Create subtask
// @Tags subtasks
// @Router /subtasks/ [post]
func (h *SubtaskHandler) Create(ctx *fasthttp.RequestCtx) {
	in, ok := h.parseSubtask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtask, err := h.uc.Create(stdCtx, h.actor(ctx), in)
	if err != nil {
		h.respondError(ctx, err, "an error occurred during the subtask creation")
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewSubtaskResponse(*subtask), "subtask successfully created")
}

// @Summary Get a single subtask
// @Tags subtasks
// @Router /subtasks/{id}/ [get]
func (h *SubtaskHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtask, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err, "subtask not found")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewSubtaskResponse(*subtask), "")
}

// @Summary Update subtask
// @Tags subtasks
// @Router /subtasks/{id}/ [put]
func (h *SubtaskHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	in, ok := h.parseSubtask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtask, err := h.uc.Update(stdCtx, h.actor(ctx), id, in)
	if err != nil {
		h.respondError(ctx, err, "an error occurred during subtask updating")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewSubtaskResponse(*subtask), "subtask successfully updated")
}

// @Summary Delete subtask
// @Tags subtasks
// @Router /subtasks/{id}/ [delete]
func (h *SubtaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	subtask, err := h.uc.Delete(stdCtx, h.actor(ctx), id)
	if err != nil {
		h.respondError(ctx, err, "an error occurred during subtask deletion")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewSubtaskResponse(*subtask), "subtask successfully deleted")
}

func (h *SubtaskHandler) parseSubtask(ctx *fasthttp.RequestCtx) (subtaskUC.Input, bool) {
	var req transport.SubtaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Failure(nil, "invalid payload"))
		return subtaskUC.Input{}, false
	}
	return subtaskUC.Input{
		TaskID:      req.TaskID,
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	}, true
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/joinboard/backend/api/transport"
	"github.com/joinboard/backend/pkg/httpcontext"
	taskUC "github.com/joinboard/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /tasks/ [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	details, err := h.uc.List(stdCtx)
	if err != nil {
		h.respondError(ctx, err, "could not list tasks")
		return
	}

	responses := make([]transport.TaskResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, transport.NewTaskResponse(d.Task, d.Contacts))
	}
	h.respondSuccess(ctx, http.StatusOK, responses, "")
}

// @Summary Create task
// @Tags tasks
// @Router /tasks/ [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	in, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	detail, err := h.uc.Create(stdCtx, h.actor(ctx), in)
	if err != nil {
		h.respondError(ctx, err, "task not created, an error occurred")
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewTaskResponse(detail.Task, detail.Contacts), "task successfully created")
}

// @Summary Get a single task
// @Tags tasks
// @Router /tasks/{id}/ [get]
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	detail, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err, "task not found")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskResponse(detail.Task, detail.Contacts), "")
}

// @Summary Update task
// @Tags tasks
// @Router /tasks/{id}/ [put]
func (h *TaskHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	in, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	detail, err := h.uc.Update(stdCtx, h.actor(ctx), id, in)
	if err != nil {
		h.respondError(ctx, err, "an error occurred during task updating")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskResponse(detail.Task, detail.Contacts), "task successfully updated")
}

// @Summary Delete task
// @Tags tasks
// @Router /tasks/{id}/ [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, h.actor(ctx), id); err != nil {
		h.respondError(ctx, err, "an error occurred during task deletion")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil, "task successfully deleted")
}

// @Summary List contacts assigned to a task
// @Tags tasks
// @Router /tasks/{id}/contacts/ [get]
func (h *TaskHandler) ListContacts(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	contacts, err := h.uc.ListContacts(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err, "could not list task contacts")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewContactResponses(contacts), "")
}

// @Summary Assign contacts to a task
// @Tags tasks
// @Router /tasks/{id}/contacts/ [post]
func (h *TaskHandler) AssignContacts(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.TaskContactsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Failure(nil, "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	detail, err := h.uc.AssignContacts(stdCtx, h.actor(ctx), id, req.ContactIDs)
	if err != nil {
		h.respondError(ctx, err, "an error occurred during contact assignment")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTaskResponse(detail.Task, detail.Contacts), "contacts successfully assigned")
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx) (taskUC.Input, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Failure(nil, "invalid payload"))
		return taskUC.Input{}, false
	}
	return taskUC.Input{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		State:       req.State,
		ContactIDs:  req.ContactIDs,
	}, true
}

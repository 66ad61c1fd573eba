package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/tasktrack/backend/api/transport"
	"github.com/tasktrack/backend/domain"
	"github.com/tasktrack/backend/pkg/httpcontext"
	"github.com/tasktrack/backend/repository"
	taskUC "github.com/tasktrack/backend/usecase/task"
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
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	if name := string(args.Peek("name")); name != "" {
		stdCtx, cancel := h.requestContext(ctx)
		defer cancel()

		task, err := h.uc.GetTaskByName(stdCtx, name)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, task)
		return
	}

	filter := repository.TaskFilter{
		ImportanceID: parseInt64(string(args.Peek("importance"))),
		NameContains: string(args.Peek("name_contains")),
		Limit:        parseInt(string(args.Peek("limit")), 50),
		Offset:       parseInt(string(args.Peek("offset")), 0),
	}
	if raw := string(args.Peek("done")); raw != "" {
		done := raw == "true" || raw == "1"
		filter.Done = &done
	}
	for _, raw := range args.PeekMulti("tag") {
		if len(raw) > 0 {
			filter.Tags = append(filter.Tags, string(raw))
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	meta := transport.ListMeta{Limit: filter.Limit, Offset: filter.Offset, Count: len(tasks)}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(tasks, meta))
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	task := &domain.Task{
		Name:         req.Name,
		Description:  req.Description,
		Done:         req.Done,
		ImportanceID: req.ImportanceID,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Patch task
// @Tags tasks
// @Router /api/v1/tasks/{id} [patch]
func (h *TaskHandler) PatchTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	var req transport.TaskPatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, id, taskUC.UpdateParams{
		Name:         req.Name,
		Description:  req.Description,
		Done:         req.Done,
		ImportanceID: req.ImportanceID,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Toggle completion
// @Tags tasks
// @Router /api/v1/tasks/{id}/done [post]
func (h *TaskHandler) SetDone(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	done := true
	if body := ctx.PostBody(); len(body) > 0 {
		var req transport.DoneRequest
		if err := json.Unmarshal(body, &req); err != nil {
			h.respondInvalid(ctx, "invalid payload")
			return
		}
		if req.Done != nil {
			done = *req.Done
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.SetDone(stdCtx, id, done)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Add tracked time
// @Tags tasks
// @Router /api/v1/tasks/{id}/time [post]
func (h *TaskHandler) AddTime(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	var req transport.AddTimeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.AddTime(stdCtx, id, req.DeltaMillis)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List assigned tags
// @Tags tasks
// @Router /api/v1/tasks/{id}/tags [get]
func (h *TaskHandler) GetTaskTags(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tags, err := h.uc.AssignedTags(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tags)
}

// @Summary Assign tag
// @Tags tasks
// @Router /api/v1/tasks/{id}/tags [post]
func (h *TaskHandler) AssignTag(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	var req transport.AssignTagRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.TagID <= 0 {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.AssignTag(stdCtx, id, req.TagID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, nil)
}

// @Summary Unassign tag
// @Tags tasks
// @Router /api/v1/tasks/{id}/tags/{tagID} [delete]
func (h *TaskHandler) UnassignTag(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}
	tagID, ok := h.pathID(ctx, "tagID")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UnassignTag(stdCtx, id, tagID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

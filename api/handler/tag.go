package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/tasktrack/backend/api/transport"
	"github.com/tasktrack/backend/pkg/httpcontext"
	tagUC "github.com/tasktrack/backend/usecase/tag"
)

type TagHandler struct {
	baseHandler
	uc *tagUC.UseCase
}

func NewTagHandler(uc *tagUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TagHandler {
	return &TagHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tags
// @Tags tags
// @Router /api/v1/tags [get]
func (h *TagHandler) GetTags(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if name := string(ctx.QueryArgs().Peek("name")); name != "" {
		tag, err := h.uc.GetTagByName(stdCtx, name)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, tag)
		return
	}

	tags, err := h.uc.ListTags(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tags)
}

// @Summary Get tag
// @Tags tags
// @Router /api/v1/tags/{id} [get]
func (h *TagHandler) GetTag(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tag, err := h.uc.GetTag(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tag)
}

// @Summary Create tag
// @Tags tags
// @Router /api/v1/tags [post]
func (h *TagHandler) CreateTag(ctx *fasthttp.RequestCtx) {
	var req transport.TagRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tag, err := h.uc.CreateTag(stdCtx, req.Name)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, tag)
}

// @Summary Rename tag
// @Tags tags
// @Router /api/v1/tags/{id} [patch]
func (h *TagHandler) PatchTag(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	var req transport.TagRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tag, err := h.uc.RenameTag(stdCtx, id, req.Name)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tag)
}

// @Summary Delete tag
// @Tags tags
// @Router /api/v1/tags/{id} [delete]
func (h *TagHandler) DeleteTag(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTag(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/tasktrack/backend/api/transport"
	"github.com/tasktrack/backend/pkg/httpcontext"
	importanceUC "github.com/tasktrack/backend/usecase/importance"
)

type ImportanceHandler struct {
	baseHandler
	uc *importanceUC.UseCase
}

func NewImportanceHandler(uc *importanceUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ImportanceHandler {
	return &ImportanceHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List importance levels
// @Tags importance
// @Router /api/v1/importance [get]
func (h *ImportanceHandler) GetLevels(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if name := string(ctx.QueryArgs().Peek("name")); name != "" {
		level, err := h.uc.GetLevelByName(stdCtx, name)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, level)
		return
	}
	if raw := string(ctx.QueryArgs().Peek("val")); raw != "" {
		level, err := h.uc.GetLevelByVal(stdCtx, int32(parseInt(raw, 0)))
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, level)
		return
	}

	levels, err := h.uc.ListLevels(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, levels)
}

// @Summary Get importance level
// @Tags importance
// @Router /api/v1/importance/{id} [get]
func (h *ImportanceHandler) GetLevel(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	level, err := h.uc.GetLevel(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, level)
}

// @Summary Create importance level
// @Tags importance
// @Router /api/v1/importance [post]
func (h *ImportanceHandler) CreateLevel(ctx *fasthttp.RequestCtx) {
	var req transport.ImportanceCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	level, err := h.uc.CreateLevel(stdCtx, req.Name, req.Val)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, level)
}

// @Summary Patch importance level
// @Tags importance
// @Router /api/v1/importance/{id} [patch]
func (h *ImportanceHandler) PatchLevel(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	var req transport.ImportancePatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	level, err := h.uc.UpdateLevel(stdCtx, id, importanceUC.UpdateParams{
		Name: req.Name,
		Val:  req.Val,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, level)
}

// @Summary Delete importance level
// @Tags importance
// @Router /api/v1/importance/{id} [delete]
func (h *ImportanceHandler) DeleteLevel(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteLevel(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

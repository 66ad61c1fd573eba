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
	bookingUC "github.com/tasktrack/backend/usecase/booking"
)

type BookingHandler struct {
	baseHandler
	uc *bookingUC.UseCase
}

func NewBookingHandler(uc *bookingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List bookings
// @Tags bookings
// @Router /api/v1/bookings [get]
func (h *BookingHandler) GetBookings(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	filter := repository.BookingFilter{
		ID:                  parseInt64(string(args.Peek("id"))),
		StartAfter:          parseInt64(string(args.Peek("startdate_min"))),
		StartBefore:         parseInt64(string(args.Peek("startdate_max"))),
		EndAfter:            parseInt64(string(args.Peek("enddate_min"))),
		EndBefore:           parseInt64(string(args.Peek("enddate_max"))),
		DescriptionContains: string(args.Peek("description_contains")),
		Limit:               parseInt(string(args.Peek("limit")), 50),
		Offset:              parseInt(string(args.Peek("offset")), 0),
	}
	for _, raw := range args.PeekMulti("tag") {
		if len(raw) > 0 {
			filter.Tags = append(filter.Tags, string(raw))
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	bookings, err := h.uc.ListBookings(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	meta := transport.ListMeta{Limit: filter.Limit, Offset: filter.Offset, Count: len(bookings)}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(bookings, meta))
}

// @Summary Get booking
// @Tags bookings
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	booking, err := h.uc.GetBooking(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, booking)
}

// @Summary Create booking
// @Tags bookings
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(ctx *fasthttp.RequestCtx) {
	var req transport.BookingCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	booking := &domain.Booking{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateBooking(stdCtx, booking)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Patch booking
// @Tags bookings
// @Router /api/v1/bookings/{id} [patch]
func (h *BookingHandler) PatchBooking(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	var req transport.BookingPatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateBooking(stdCtx, id, bookingUC.UpdateParams{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Finish booking
// @Tags bookings
// @Router /api/v1/bookings/{id}/finish [post]
func (h *BookingHandler) FinishBooking(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	finished, err := h.uc.FinishBooking(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, finished)
}

// @Summary Delete booking
// @Tags bookings
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx, "id")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteBooking(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List assigned tags
// @Tags bookings
// @Router /api/v1/bookings/{id}/tags [get]
func (h *BookingHandler) GetBookingTags(ctx *fasthttp.RequestCtx) {
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
// @Tags bookings
// @Router /api/v1/bookings/{id}/tags [post]
func (h *BookingHandler) AssignTag(ctx *fasthttp.RequestCtx) {
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
// @Tags bookings
// @Router /api/v1/bookings/{id}/tags/{tagID} [delete]
func (h *BookingHandler) UnassignTag(ctx *fasthttp.RequestCtx) {
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

package api

import (
	"net/http"

	"wedding-console/internal/domain/session"
	reqdto "wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingFormHandler struct {
	cmds commands.BookingFormCommands
	q    queries.DraftQueries
}

func NewBookingFormHandler(cmds commands.BookingFormCommands, q queries.DraftQueries) *BookingFormHandler {
	return &BookingFormHandler{cmds: cmds, q: q}
}

// @Summary Open booking form
// @Description Open a blank booking form, or one prefilled from an existing booking. Prices are fixed to the catalog loaded here.
// @Tags booking-forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenBookingFormRequest false "Booking to edit"
// @Success 201 {object} queries.DraftView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /booking-forms [post]
func (h *BookingFormHandler) Open(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	var req reqdto.OpenBookingFormRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	view, err := h.cmds.Open(c.Request.Context(), sess, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get booking form
// @Tags booking-forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking form ID"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /booking-forms/{id} [get]
func (h *BookingFormHandler) Get(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), sess, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update booking form
// @Description Partial update. Omitted keys are kept, null clears an optional selection. The billing summary is recomputed on every pricing change.
// @Tags booking-forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking form ID"
// @Param request body reqdto.UpdateBookingFormRequest true "Changes"
// @Success 200 {object} queries.DraftView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /booking-forms/{id} [patch]
func (h *BookingFormHandler) Update(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), sess, id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit booking form
// @Description Create or update the marketplace booking with its payment and car reservations. A retry with the same Idempotency-Key replays the first result.
// @Tags booking-forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking form ID"
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Success 201 {object} resdto.SubmitResponse
// @Success 200 {object} resdto.SubmitResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /booking-forms/{id}/submit [post]
func (h *BookingFormHandler) Submit(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), sess, id, c.GetHeader(middleware.IdempotencyKeyHeader))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.SubmitResponse{
		Booking:  resdto.FromBookingRM(result.Booking),
		Replayed: result.IsReplayed,
	})
}

// @Summary Discard booking form
// @Tags booking-forms
// @Security BearerAuth
// @Param id path string true "Booking form ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking-forms/{id} [delete]
func (h *BookingFormHandler) Discard(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	if err := h.cmds.Discard(c.Request.Context(), sess, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// sessionAndID aborts the request when either is missing.
func sessionAndID(c *gin.Context) (*session.Session, uuid.UUID, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return nil, uuid.Nil, false
	}
	id, ok := pathID(c, "id")
	if !ok {
		return nil, uuid.Nil, false
	}
	return sess, id, true
}

// pathID parses the named path parameter as a UUID, answering 400 when it
// is not one.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

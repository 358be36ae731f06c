package api

import (
	"net/http"

	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/me [get]
func (h *BookingHandler) Mine(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	items, err := h.q.Mine(c.Request.Context(), sess)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRMs(items))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	b, err := h.q.GetByID(c.Request.Context(), sess, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(*b))
}

// @Summary Cancel booking
// @Description Delete the booking on the marketplace. Customers may only cancel their own bookings.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), sess, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

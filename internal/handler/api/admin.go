package api

import (
	"net/http"
	"strconv"

	"wedding-console/internal/domain/catalog"
	reqdto "wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard. Routes are behind RequireAdmin; the
// use cases check the role again.
type AdminHandler struct {
	bookingCmds commands.BookingCommands
	promoCmds   commands.PromoCommands
	catalogCmds commands.CatalogAdminCommands
	bookingQ    queries.BookingQueries
	userQ       queries.UserQueries
}

func NewAdminHandler(
	bookingCmds commands.BookingCommands,
	promoCmds commands.PromoCommands,
	catalogCmds commands.CatalogAdminCommands,
	bookingQ queries.BookingQueries,
	userQ queries.UserQueries,
) *AdminHandler {
	return &AdminHandler{
		bookingCmds: bookingCmds,
		promoCmds:   promoCmds,
		catalogCmds: catalogCmds,
		bookingQ:    bookingQ,
		userQ:       userQ,
	}
}

// @Summary List all bookings
// @Description Newest first, keyset paged
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	limit := queries.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	view, err := h.bookingQ.All(c.Request.Context(), sess, after, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingListView(view))
}

// @Summary Change booking status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status (pending, confirmed, declined)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	b, err := h.bookingCmds.UpdateStatus(c.Request.Context(), sess, id, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(*b))
}

// @Summary Create promo
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromoRequest true "Promo"
// @Success 201 {object} resdto.PromoResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/promos [post]
func (h *AdminHandler) CreatePromo(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	var req reqdto.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	p, err := h.promoCmds.Create(c.Request.Context(), sess, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromo(p))
}

// @Summary Delete promo
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Promo ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/promos/{id} [delete]
func (h *AdminHandler) DeletePromo(c *gin.Context) {
	sess, id, ok := sessionAndID(c)
	if !ok {
		return
	}

	if err := h.promoCmds.Delete(c.Request.Context(), sess, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List users
// @Description Every marketplace account, ordered by username
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	users, err := h.userQ.List(c.Request.Context(), sess)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUsers(users))
}

// DeleteCatalogItem returns the handler removing one entry of kind.
//
// @Summary Delete catalog entry
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/venues/{id} [delete]
// @Router /admin/caterings/{id} [delete]
// @Router /admin/dishes/{id} [delete]
// @Router /admin/decorations/{id} [delete]
// @Router /admin/cars/{id} [delete]
func (h *AdminHandler) DeleteCatalogItem(kind catalog.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, id, ok := sessionAndID(c)
		if !ok {
			return
		}

		if err := h.catalogCmds.DeleteItem(c.Request.Context(), sess, kind, id); err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary Add dish to catering menu
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catering ID"
// @Param dish_id path string true "Dish ID"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/caterings/{id}/dishes/{dish_id} [post]
func (h *AdminHandler) LinkDish(c *gin.Context) {
	sess, cateringID, ok := sessionAndID(c)
	if !ok {
		return
	}
	dishID, ok := pathID(c, "dish_id")
	if !ok {
		return
	}

	if err := h.catalogCmds.LinkDish(c.Request.Context(), sess, cateringID, dishID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MenuItemResponse{CateringID: cateringID, DishID: dishID})
}

// @Summary Remove dish from catering menu
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Catering ID"
// @Param dish_id path string true "Dish ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/caterings/{id}/dishes/{dish_id} [delete]
func (h *AdminHandler) UnlinkDish(c *gin.Context) {
	sess, cateringID, ok := sessionAndID(c)
	if !ok {
		return
	}
	dishID, ok := pathID(c, "dish_id")
	if !ok {
		return
	}

	if err := h.catalogCmds.UnlinkDish(c.Request.Context(), sess, cateringID, dishID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

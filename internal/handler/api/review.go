package api

import (
	"net/http"

	reqdto "wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Venue reviews
// @Description Newest first, with the average rating
// @Tags reviews
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueReviewsResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /venues/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	venueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.ForVenue(c.Request.Context(), venueID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVenueReviewsView(view))
}

// @Summary Write a venue review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.CreateReviewRequest true "Rating 1-5 and comment"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /venues/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	sess, venueID, ok := sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	r, err := h.cmds.Create(c.Request.Context(), sess, venueID, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReview(*r))
}

// @Summary Delete own venue review
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param review_id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /venues/{id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	sess, venueID, ok := sessionAndID(c)
	if !ok {
		return
	}
	reviewID, ok := pathID(c, "review_id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), sess, venueID, reviewID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

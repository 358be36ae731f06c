package api

import (
	"net/http"

	reqdto "wedding-console/internal/handler/dto/request"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Price a selection
// @Description Compute the billing summary for a selection against the current catalog, without opening a form
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Selection"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), sess, req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package api

import (
	"net/http"

	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GateHandler struct {
	q queries.SessionQueries
}

func NewGateHandler(q queries.SessionQueries) *GateHandler {
	return &GateHandler{q: q}
}

// @Summary Page access gate
// @Description Decide whether the page at path may render for the caller, or where to redirect
// @Tags auth
// @Produce json
// @Param path query string true "Requested page path"
// @Success 200 {object} session.Decision
// @Router /gate [get]
func (h *GateHandler) Check(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		path = "/"
	}

	// anonymous callers get a nil session and are sent to login
	sess, _ := middleware.GetSession(c)
	c.JSON(http.StatusOK, h.q.Gate(c.Request.Context(), sess, path))
}

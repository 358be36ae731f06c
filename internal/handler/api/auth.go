package api

import (
	"net/http"

	reqdto "wedding-console/internal/handler/dto/request"
	resdto "wedding-console/internal/handler/dto/response"
	"wedding-console/internal/handler/httperr"
	"wedding-console/internal/handler/middleware"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/pkg/cookie"
	"wedding-console/internal/pkg/errs"
	"wedding-console/internal/usecase/commands"
	"wedding-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.SessionQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.SessionQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary User signup
// @Description Create a marketplace account and start a console session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.startSession(c, result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.startSession(c, result))
}

// @Summary User logout
// @Description End the console session and the marketplace token behind it
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Logout(c.Request.Context(), sess); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the user behind the session, as the marketplace currently sees it
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Unauthorized", nil)
		return
	}

	u, err := h.q.Current(c.Request.Context(), sess)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionUser(*u))
}

func (h *AuthHandler) startSession(c *gin.Context, result *commands.AuthResult) resdto.LoginResponse {
	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, result.ExpiresIn)
	return resdto.LoginResponse{
		AccessToken: result.Token,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        resdto.FromSessionUser(result.Session.User),
	}
}

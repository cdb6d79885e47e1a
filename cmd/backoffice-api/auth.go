package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
	"github.com/MikeMC777/ordenes-backoffice/internal/telemetry"
	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

// @Summary  Create a back-office user
// @Tags     auth
// @Param    body body auth.Credentials true "credentials"
// @Success  201 {object} auth.User
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /register [post]
func registerHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cr auth.Credentials
		if err := c.ShouldBindJSON(&cr); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		u, err := svc.Register(c.Request.Context(), cr)
		if ve, ok := validate.As(err); ok {
			httpx.AbortValidation(c, ve)
			return
		}
		if errors.Is(err, auth.ErrAlreadyExist) {
			httpx.Abort(c, http.StatusConflict, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// @Summary  Issue access and refresh tokens
// @Tags     auth
// @Param    body body auth.Credentials true "credentials"
// @Success  200 {object} auth.Tokens
// @Failure  401 {object} httpx.HTTPError
// @Router   /login [post]
func loginHandler(svc *auth.Service, m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cr auth.Credentials
		if err := c.ShouldBindJSON(&cr); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := svc.Login(c.Request.Context(), cr)
		m.Login(c.Request.Context(), err == nil)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			httpx.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// @Summary  Rotate the token pair
// @Tags     auth
// @Param    body body refreshRequest true "refresh token"
// @Success  200 {object} auth.Tokens
// @Failure  401 {object} httpx.HTTPError
// @Router   /refresh [post]
func refreshHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		t, err := svc.Refresh(c.Request.Context(), req.RefreshToken)
		if errors.Is(err, auth.ErrUnauthorized) {
			httpx.Abort(c, http.StatusUnauthorized, "invalid or expired refresh token")
			return
		}
		if err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// @Summary  Revoke all sessions of the caller
// @Tags     auth
// @Security BearerAuth
// @Success  204
// @Router   /logout [post]
func logoutHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Logout(c.Request.Context(), httpx.Username(c)); err != nil {
			httpx.AbortInternal(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Return the authenticated username
// @Tags     auth
// @Security BearerAuth
// @Success  200
// @Router   /protected [get]
func protectedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": httpx.Username(c)})
	}
}

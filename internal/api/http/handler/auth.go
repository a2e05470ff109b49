package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/accountability-atlas/user-service/internal/api/http/middleware"
	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/service"
)

// Auth handles registration, login, logout and token refresh.
type Auth struct {
	registration *service.Registration
	auth         *service.Auth
	accessTTL    time.Duration
	logger       *logger.Logger
}

func NewAuth(registration *service.Registration, auth *service.Auth, accessTTL time.Duration, logger *logger.Logger) *Auth {
	return &Auth{
		registration: registration,
		auth:         auth,
		accessTTL:    accessTTL,
		logger:       logger,
	}
}

type registerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

type authResponse struct {
	User   userResponse `json:"user"`
	Tokens tokenPair    `json:"tokens"`
}

func (h *Auth) tokens(access, refresh string) tokenPair {
	return tokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(h.accessTTL.Seconds()),
	}
}

// Register creates the account and logs it straight in, returning the
// user together with a token pair.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c)
		return
	}

	if _, err := h.registration.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName); err != nil {
		writeError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		User:   toUserResponse(result.User),
		Tokens: h.tokens(result.AccessToken, result.RefreshToken),
	})
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		User:   toUserResponse(result.User),
		Tokens: h.tokens(result.AccessToken, result.RefreshToken),
	})
}

// Logout revokes the session named by the caller's access token.
func (h *Auth) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody{Code: "INVALID_TOKEN", Message: "Invalid access token"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), claims.SessionID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Auth) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c)
		return
	}

	access, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.tokens(access, ""))
}

// OAuthLogin is an API stub; provider-based login is not wired up yet.
func (h *Auth) OAuthLogin(c *gin.Context) {
	writeNotImplemented(c)
}

// RequestPasswordReset is an API stub.
func (h *Auth) RequestPasswordReset(c *gin.Context) {
	writeNotImplemented(c)
}

// ConfirmPasswordReset is an API stub.
func (h *Auth) ConfirmPasswordReset(c *gin.Context) {
	writeNotImplemented(c)
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/accountability-atlas/user-service/internal/api/http/handler"
	"github.com/accountability-atlas/user-service/internal/api/http/middleware"
	"github.com/accountability-atlas/user-service/internal/model"
)

// NewRouter wires all routes onto a gin engine.
func NewRouter(auth *handler.Auth, users *handler.Users, jwks *handler.JWKS, signer model.TokenSigner) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/.well-known/jwks.json", jwks.Get)

	requireAuth := middleware.BearerAuth(signer)

	v1 := router.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
			authGroup.POST("/refresh", auth.Refresh)
			authGroup.POST("/logout", requireAuth, auth.Logout)
			authGroup.POST("/oauth/:provider", auth.OAuthLogin)
			authGroup.POST("/password-reset/request", auth.RequestPasswordReset)
			authGroup.POST("/password-reset/confirm", auth.ConfirmPasswordReset)
		}

		usersGroup := v1.Group("/users")
		{
			usersGroup.GET("/me", requireAuth, users.Me)
			usersGroup.PATCH("/me", requireAuth, users.UpdateMe)
			usersGroup.GET("/:id", users.GetByID)
		}

		adminGroup := v1.Group("/admin", requireAuth)
		{
			adminGroup.PATCH("/users/:id/trust-tier", users.UpdateTrustTier)
		}
	}

	return router
}

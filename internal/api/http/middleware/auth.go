package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/accountability-atlas/user-service/internal/model"
)

const claimsContextKey = "auth.claims"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BearerAuth verifies the Authorization header and stores the decoded
// claims in the request context. Requests without a valid access token
// are rejected before the handler runs.
func BearerAuth(signer model.TokenSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    "INVALID_TOKEN",
				Message: "Invalid access token",
			})
			return
		}

		claims, err := signer.Parse(raw)
		if err != nil {
			if errors.Is(err, model.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
					Code:    "TOKEN_EXPIRED",
					Message: "Access token expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    "INVALID_TOKEN",
				Message: "Invalid access token",
			})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by BearerAuth.
func ClaimsFromContext(c *gin.Context) (model.AccessClaims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return model.AccessClaims{}, false
	}
	claims, ok := value.(model.AccessClaims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accountability-atlas/user-service/internal/model"
)

// JWKS serves the public key set consumers use to verify access tokens.
type JWKS struct {
	signer model.TokenSigner
}

func NewJWKS(signer model.TokenSigner) *JWKS {
	return &JWKS{signer: signer}
}

// Get returns the key set. The document only changes on process restart,
// so consumers may cache it for an hour.
func (h *JWKS) Get(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/json", h.signer.JWKS())
}

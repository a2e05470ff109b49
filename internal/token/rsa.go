package token

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/accountability-atlas/user-service/internal/model"
)

// KeyID tags the process keypair in issued tokens and the JWKS document.
const KeyID = "user-service-key-1"

// Claims is the wire shape of access-token claims.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	TrustTier string `json:"trustTier"`
	SessionID string `json:"sessionId"`
}

// RSA implements model.TokenSigner with an RS256 keypair held for the
// process lifetime. The JWKS document is rendered once at construction
// and is byte-stable across calls.
type RSA struct {
	key       *rsa.PrivateKey
	accessTTL time.Duration
	jwks      []byte
}

// GenerateKeyPair creates the process signing keypair. Called once at
// startup; there is no rotation protocol.
func GenerateKeyPair() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing keypair: %w", err)
	}
	return key, nil
}

// NewRSA creates a signer around an existing keypair.
func NewRSA(key *rsa.PrivateKey, accessTTL time.Duration) (*RSA, error) {
	jwks, err := renderJWKS(&key.PublicKey)
	if err != nil {
		return nil, err
	}
	return &RSA{key: key, accessTTL: accessTTL, jwks: jwks}, nil
}

// Issue creates a signed access token bound to the given session.
func (r *RSA) Issue(userID uuid.UUID, email string, tier model.TrustTier, sessionID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.accessTTL)),
		},
		Email:     email,
		TrustTier: string(tier),
		SessionID: sessionID.String(),
	})
	token.Header["kid"] = KeyID

	signed, err := token.SignedString(r.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and decodes the claims. Expiry is
// reported as model.ErrTokenExpired; every other failure, including
// unparsable claim values, as model.ErrTokenInvalid.
func (r *RSA) Parse(tokenString string) (model.AccessClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return &r.key.PublicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.AccessClaims{}, model.ErrTokenExpired
		}
		return model.AccessClaims{}, model.ErrTokenInvalid
	}
	if !token.Valid {
		return model.AccessClaims{}, model.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.AccessClaims{}, model.ErrTokenInvalid
	}
	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return model.AccessClaims{}, model.ErrTokenInvalid
	}
	tier, err := model.ParseTrustTier(claims.TrustTier)
	if err != nil {
		return model.AccessClaims{}, model.ErrTokenInvalid
	}

	out := model.AccessClaims{
		UserID:    userID,
		Email:     claims.Email,
		TrustTier: tier,
		SessionID: sessionID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// JWKS returns the public key set document. Callers must not mutate it.
func (r *RSA) JWKS() []byte {
	return r.jwks
}

type jwk struct {
	Kty string `json:"kty"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

func renderJWKS(pub *rsa.PublicKey) ([]byte, error) {
	set := jwkSet{Keys: []jwk{{
		Kty: "RSA",
		Use: "sig",
		Alg: "RS256",
		Kid: KeyID,
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}}}

	doc, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to render jwks: %w", err)
	}
	return doc, nil
}

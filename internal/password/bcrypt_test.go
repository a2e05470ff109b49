package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/accountability-atlas/user-service/internal/model"
)

func TestBcrypt_Roundtrip(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hash, err := b.Hash("Secret123")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123", hash)

	assert.NoError(t, b.Compare("Secret123", hash))
	assert.ErrorIs(t, b.Compare("WrongPass", hash), model.ErrInvalidCredentials)
}

func TestBcrypt_EmptyPassword(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	_, err := b.Hash("")
	require.Error(t, err)
}

func TestNewBcrypt_CostFallback(t *testing.T) {
	b := NewBcrypt(0)
	assert.Equal(t, bcrypt.DefaultCost, b.cost)

	b = NewBcrypt(100)
	assert.Equal(t, bcrypt.DefaultCost, b.cost)
}

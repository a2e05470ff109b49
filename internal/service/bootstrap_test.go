package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accountability-atlas/user-service/internal/mocks"
	"github.com/accountability-atlas/user-service/internal/model"
	"github.com/accountability-atlas/user-service/internal/testutil"
)

func TestBootstrap_EnsureAdmin_SkippedWithoutConfig(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}

	b := NewBootstrap(users, testutil.MakeNoopLogger())

	require.NoError(t, b.EnsureAdmin(ctx, "", ""))
	require.NoError(t, b.EnsureAdmin(ctx, "admin@example.com", ""))
	require.NoError(t, b.EnsureAdmin(ctx, "", "$2a$10$hash"))

	users.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestBootstrap_EnsureAdmin_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}

	users.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(true, nil)

	b := NewBootstrap(users, testutil.MakeNoopLogger())

	require.NoError(t, b.EnsureAdmin(ctx, "Admin@Example.com", "$2a$10$hash"))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBootstrap_EnsureAdmin_CreatesAdmin(t *testing.T) {
	ctx := context.Background()
	users := &mocks.UserStore{}

	users.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(false, nil)

	var created model.User
	var createdStats model.UserStats
	users.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(model.User)
			createdStats = args.Get(2).(model.UserStats)
		}).
		Return(model.User{}, nil)

	b := NewBootstrap(users, testutil.MakeNoopLogger())

	require.NoError(t, b.EnsureAdmin(ctx, "admin@example.com", "$2a$10$hash"))

	assert.Equal(t, "admin@example.com", created.Email)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.Equal(t, "Admin", created.DisplayName)
	assert.Equal(t, model.TrustTierAdmin, created.TrustTier)
	assert.True(t, created.EmailVerified)

	assert.Zero(t, createdStats.SubmissionCount)
	assert.Zero(t, createdStats.ApprovedCount)
	assert.Zero(t, createdStats.RejectedCount)
}

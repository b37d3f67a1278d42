package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/course-portal-api/internal/repository"
)

func TestAuthService_EnsureAdminAndLogin(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStorage()
	svc := NewAuthService(store)

	admin, err := svc.EnsureAdmin(ctx, "admin", "admin2025")
	require.NoError(t, err)
	assert.NotEqual(t, "admin2025", admin.Password, "password must be stored hashed")

	again, err := svc.EnsureAdmin(ctx, "admin", "other")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	user, err := svc.Login(ctx, "admin", "admin2025")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)

	_, err = svc.Login(ctx, "admin", "other")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody", "admin2025")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemStorage()
	admin, err := NewAuthService(store).EnsureAdmin(ctx, "admin", "secret")
	require.NoError(t, err)

	svc := NewUserService(store)
	got, err := svc.GetUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = svc.GetUser(ctx, admin.ID+1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

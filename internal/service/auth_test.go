package service

import (
	"context"
	"encoding/json"
	"testing"

	"storefront-api/internal/dto"
	"storefront-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newTestDB(t))

	req := &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Phone:    "9876543210",
	}

	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleCustomer, resp.Role)
	assert.Equal(t, "asha@example.com", resp.Email)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newTestDB(t))

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		resp, err := svc.Login(ctx, "asha@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, resp)
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, resp)
	})

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, "asha@example.com", "secret123")
		require.NoError(t, err)

		userID, role, err := svc.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.ID, userID)
		assert.Equal(t, model.RoleCustomer, role)
	})
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, newTestDB(t))

	_, _, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfileNeverSerializesPasswordHash(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newTestDB(t))

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	user, err := svc.GetProfile(ctx, resp.ID)
	require.NoError(t, err)
	require.NotEmpty(t, user.Password) // hash is loaded internally

	body, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), user.Password)
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t, newTestDB(t))

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "secret123", Phone: "9876543210",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, resp.ID, &dto.UpdateProfileRequest{
		Address: "12 MG Road",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "12 MG Road", updated.Address)

	// submitted password is re-hashed and replaces the old one
	_, err = svc.UpdateProfile(ctx, resp.ID, &dto.UpdateProfileRequest{Password: "newsecret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "asha@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "asha@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestAuthService(t, newTestDB(t))

	_, err := svc.GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

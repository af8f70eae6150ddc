package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository/memory"
)

func newAuthService() *AuthService {
	return NewAuthService(memory.NewUserRepository(memory.NewStore()), "test-secret", time.Hour)
}

func registerDTO(username string) domain.RegisterUserDTO {
	return domain.RegisterUserDTO{
		Username: username,
		Password: "password123",
		Email:    username + "@example.com",
		FullName: "Test User",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register(context.Background(), registerDTO("alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.UserTypeCustomer, user.UserType)
	assert.Empty(t, user.Password, "plaintext or hash must not leak out of Register")
}

func TestRegisterVendorType(t *testing.T) {
	svc := newAuthService()

	dto := registerDTO("bob")
	dto.UserType = "vendor"
	user, err := svc.Register(context.Background(), dto)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeVendor, user.UserType)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerDTO("alice"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerDTO("alice"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	dto := registerDTO("alice2")
	dto.Email = "alice@example.com"
	_, err = svc.Register(ctx, dto)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerDTO("alice"))
	require.NoError(t, err)

	resp, err := svc.Login(ctx, domain.LoginUserDTO{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.UserID)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, string(domain.UserTypeCustomer), claims["user_type"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerDTO("alice"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginUserDTO{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginUserDTO{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsForgedToken(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerDTO("alice"))
	require.NoError(t, err)
	resp, err := svc.Login(ctx, domain.LoginUserDTO{Username: "alice", Password: "password123"})
	require.NoError(t, err)

	other := NewAuthService(memory.NewUserRepository(memory.NewStore()), "other-secret", time.Hour)
	_, err = other.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

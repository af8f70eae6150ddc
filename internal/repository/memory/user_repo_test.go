package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharath12IND/ParkEase/internal/domain"
	"github.com/Sharath12IND/ParkEase/internal/repository"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Username: "alice",
		Password: "hashed",
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		UserType: domain.UserTypeCustomer,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepositoryRejectsDuplicates(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEntry)

	_, err = repo.Create(ctx, &domain.User{Username: "bob", Email: "alice@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEntry)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	repo := NewUserRepository(NewStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	created.Username = "mutated"

	fresh, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", fresh.Username)
}

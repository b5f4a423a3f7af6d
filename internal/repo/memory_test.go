package repo

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroBookings/api-system/internal/model"
	"github.com/AstroBookings/api-system/internal/pkg/apperr"
)

func testUser(id, email string) *model.User {
	return &model.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		Role:         "traveler",
		PasswordHash: "digest",
	}
}

func TestMemoryRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Save(ctx, testUser("1", "one@test.dev")))

	byEmail, err := repo.FindByEmail(ctx, "one@test.dev")
	require.NoError(t, err)
	assert.Equal(t, "1", byEmail.ID)

	byID, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "one@test.dev", byID.Email)

	_, err = repo.FindByEmail(ctx, "absent@test.dev")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = repo.FindByID(ctx, "absent")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMemoryRepository_EmailIsExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Save(ctx, testUser("1", "One@test.dev")))

	_, err := repo.FindByEmail(ctx, "one@test.dev")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMemoryRepository_DuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Save(ctx, testUser("1", "dup@test.dev")))
	err := repo.Save(ctx, testUser("2", "dup@test.dev"))
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// The original record is untouched.
	user, err := repo.FindByEmail(ctx, "dup@test.dev")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
}

func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Save(ctx, testUser("1", "gone@test.dev")))
	require.NoError(t, repo.Delete(ctx, "1"))

	_, err := repo.FindByID(ctx, "1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = repo.FindByEmail(ctx, "gone@test.dev")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "1"), apperr.ErrNotFound)

	// Email can be reused after deletion.
	require.NoError(t, repo.Save(ctx, testUser("2", "gone@test.dev")))
}

func TestMemoryRepository_ConcurrentSaveSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	const attempts = 64
	var saved int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := testUser(fmt.Sprintf("id-%d", i), "race@test.dev")
			if err := repo.Save(ctx, user); err == nil {
				atomic.AddInt64(&saved, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, saved)
}

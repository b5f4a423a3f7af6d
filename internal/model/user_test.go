package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublic_ExcludesPasswordHash(t *testing.T) {
	user := &User{
		ID:           "1750000000000001",
		Name:         "Test User",
		Email:        "test.user@test.dev",
		Role:         "traveler",
		PasswordHash: "digest",
	}

	public := user.Public()
	assert.Equal(t, PublicUser{
		ID:    "1750000000000001",
		Name:  "Test User",
		Email: "test.user@test.dev",
		Role:  "traveler",
	}, public)
}

func TestUserToken_JSONShape(t *testing.T) {
	payload := UserToken{
		User: PublicUser{
			ID:    "1",
			Name:  "Test User",
			Email: "test.user@test.dev",
			Role:  "traveler",
		},
		Token: "token-value",
	}

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"user":{"id":"1","name":"Test User","email":"test.user@test.dev","role":"traveler"},"token":"token-value"}`,
		string(encoded))
}

func TestUser_HashNeverMarshalled(t *testing.T) {
	user := User{ID: "1", Name: "A", Email: "a@test.dev", Role: "traveler", PasswordHash: "digest"}

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "digest")
	assert.NotContains(t, string(encoded), "hash")
}

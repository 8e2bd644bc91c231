package database

import (
	"context"
	"testing"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alice", "alice@example.com")

	got, err := db.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)

	got.Name = "alice2"
	require.NoError(t, db.SaveUser(ctx, got))

	updated, err := db.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Name)

	require.NoError(t, db.DeleteUser(ctx, user.ID))
	gone, err := db.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.GetUser(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "bob", "bob@example.com")

	got, err := db.GetUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bob", got.Name)

	none, err := db.GetUserByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestDuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "bob", "dup@example.com")
	err := db.CreateUser(ctx, &models.User{Name: "eve", Email: "dup@example.com"})
	assert.Error(t, err, "unique index on email must reject duplicates")
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)

	createTestUser(t, db, "u1", "u1@example.com")
	createTestUser(t, db, "u2", "u2@example.com")

	users, err := db.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].Name)
	assert.Equal(t, "u2", users[1].Name)
}

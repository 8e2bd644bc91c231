package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsByOwner(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner", "owner@example.com")
	other := createTestUser(t, db, "other", "other@example.com")

	createTestItem(t, db, owner.ID, "drill", true)
	createTestItem(t, db, owner.ID, "saw", false)
	createTestItem(t, db, other.ID, "hammer", true)

	items, err := db.ItemsByOwner(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "drill", items[0].Name)
	assert.Equal(t, "saw", items[1].Name)
}

func TestSearchItems(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner", "owner@example.com")
	createTestItem(t, db, owner.ID, "Cordless Drill", true)
	createTestItem(t, db, owner.ID, "Hand saw", true)
	hidden := createTestItem(t, db, owner.ID, "Broken drill", false)

	items, err := db.SearchItems(ctx, "DRILL", 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "unavailable items are excluded")
	assert.Equal(t, "Cordless Drill", items[0].Name)
	assert.NotEqual(t, hidden.ID, items[0].ID)

	// description matches too
	byDescription, err := db.SearchItems(ctx, "description", 10, 0)
	require.NoError(t, err)
	assert.Len(t, byDescription, 2)
}

func TestItemsByRequestIDs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner", "owner@example.com")
	requestID := int64(42)

	item := createTestItem(t, db, owner.ID, "plain", true)
	_ = item

	fulfilling := createTestItem(t, db, owner.ID, "fulfilling", true)
	fulfilling.RequestID = &requestID
	require.NoError(t, db.SaveItem(ctx, fulfilling))

	items, err := db.ItemsByRequestIDs(ctx, []int64{requestID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "fulfilling", items[0].Name)

	none, err := db.ItemsByRequestIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

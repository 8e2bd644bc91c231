package service

import (
	"context"
	"testing"

	"shareit/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRequestCreate(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	requester := mustUser(t, svc, "requester", "requester@example.com")

	request, err := svc.Requests.Create(ctx, requester.ID, models.NewRequest{Description: "need a drill"})
	require.NoError(t, err)
	require.NotZero(t, request.ID)
	require.False(t, request.Created.IsZero())

	var validation *ValidationError
	_, err = svc.Requests.Create(ctx, requester.ID, models.NewRequest{Description: "   "})
	require.ErrorAs(t, err, &validation)

	var notFound *NotFoundError
	_, err = svc.Requests.Create(ctx, 999, models.NewRequest{Description: "need a saw"})
	require.ErrorAs(t, err, &notFound)
}

func TestRequestOwnWithItems(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	requester := mustUser(t, svc, "requester", "requester@example.com")
	owner := mustUser(t, svc, "owner", "owner@example.com")

	first, err := svc.Requests.Create(ctx, requester.ID, models.NewRequest{Description: "need a drill"})
	require.NoError(t, err)
	second, err := svc.Requests.Create(ctx, requester.ID, models.NewRequest{Description: "need a saw"})
	require.NoError(t, err)

	available := true
	_, err = svc.Items.Create(ctx, owner.ID, models.NewItem{
		Name: "drill", Description: "cordless drill", Available: &available, RequestID: &first.ID,
	})
	require.NoError(t, err)

	views, err := svc.Requests.Own(ctx, requester.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	// newest first
	require.Equal(t, second.ID, views[0].ID)
	require.Empty(t, views[0].Items)
	require.Equal(t, first.ID, views[1].ID)
	require.Len(t, views[1].Items, 1)
	require.Equal(t, "drill", views[1].Items[0].Name)

	var notFound *NotFoundError
	_, err = svc.Requests.Own(ctx, 999)
	require.ErrorAs(t, err, &notFound)
}

func TestRequestFromOthers(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	requester := mustUser(t, svc, "requester", "requester@example.com")
	other := mustUser(t, svc, "other", "other@example.com")

	_, err := svc.Requests.Create(ctx, requester.ID, models.NewRequest{Description: "need a drill"})
	require.NoError(t, err)
	theirs, err := svc.Requests.Create(ctx, other.ID, models.NewRequest{Description: "need a ladder"})
	require.NoError(t, err)

	views, err := svc.Requests.FromOthers(ctx, requester.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, theirs.ID, views[0].ID)

	var notFound *NotFoundError
	_, err = svc.Requests.FromOthers(ctx, 999, 0, 10)
	require.ErrorAs(t, err, &notFound)
}

func TestRequestGet(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	requester := mustUser(t, svc, "requester", "requester@example.com")
	viewer := mustUser(t, svc, "viewer", "viewer@example.com")

	request, err := svc.Requests.Create(ctx, requester.ID, models.NewRequest{Description: "need a drill"})
	require.NoError(t, err)

	// any known user may read any request
	view, err := svc.Requests.Get(ctx, viewer.ID, request.ID)
	require.NoError(t, err)
	require.Equal(t, request.ID, view.ID)
	require.NotNil(t, view.Items)

	var notFound *NotFoundError
	_, err = svc.Requests.Get(ctx, viewer.ID, 999)
	require.ErrorAs(t, err, &notFound)

	_, err = svc.Requests.Get(ctx, 999, request.ID)
	require.ErrorAs(t, err, &notFound)
}

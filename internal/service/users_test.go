package service

import (
	"context"
	"testing"

	"shareit/internal/models"

	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	user, err := svc.Users.Create(ctx, models.User{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	_, err = svc.Users.Create(ctx, models.User{Name: "", Email: "x@example.com"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = svc.Users.Create(ctx, models.User{Name: "bob", Email: "alice@example.com"})
	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)
}

func TestUserGetNotFound(t *testing.T) {
	svc, _ := setupServices(t)

	_, err := svc.Users.Get(context.Background(), 42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUserUpdate(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	alice := mustUser(t, svc, "alice", "alice@example.com")
	mustUser(t, svc, "bob", "bob@example.com")

	name := "alice2"
	updated, err := svc.Users.Update(ctx, alice.ID, models.UserPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Name)
	require.Equal(t, "alice@example.com", updated.Email)

	// keeping one's own email is not a conflict
	ownEmail := "alice@example.com"
	_, err = svc.Users.Update(ctx, alice.ID, models.UserPatch{Email: &ownEmail})
	require.NoError(t, err)

	taken := "bob@example.com"
	_, err = svc.Users.Update(ctx, alice.ID, models.UserPatch{Email: &taken})
	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)

	blank := "  "
	_, err = svc.Users.Update(ctx, alice.ID, models.UserPatch{Name: &blank})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = svc.Users.Update(ctx, 999, models.UserPatch{Name: &name})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUserDeleteAndList(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	alice := mustUser(t, svc, "alice", "alice@example.com")
	mustUser(t, svc, "bob", "bob@example.com")

	require.NoError(t, svc.Users.Delete(ctx, alice.ID))

	users, err := svc.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "bob", users[0].Name)
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"invitationservice/internal/domain"
)

func TestInviteeRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewInviteeRepository(NewStore())

	ok, err := repo.Exists(ctx, "John Doe (0)")
	require.NoError(t, err)
	require.False(t, ok)

	saved, err := repo.Save(ctx, domain.NewInvitee("John Doe (0)", "john@email.me"))
	require.NoError(t, err)
	require.Equal(t, &domain.Invitee{Invitee: "John Doe (0)", Email: "john@email.me"}, saved)

	ok, err = repo.Exists(ctx, "John Doe (0)")
	require.NoError(t, err)
	require.True(t, ok)

	got, err := repo.Get(ctx, "John Doe (0)")
	require.NoError(t, err)
	require.Equal(t, saved, got)

	updated, err := repo.Save(ctx, domain.NewInvitee("John Doe (0)", "john@email.me.com"))
	require.NoError(t, err)
	require.Equal(t, "john@email.me.com", updated.Email)

	deleted, err := repo.Delete(ctx, "John Doe (0)")
	require.NoError(t, err)
	require.Equal(t, updated, deleted)

	_, err = repo.Get(ctx, "John Doe (0)")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Delete(ctx, "John Doe (0)")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInviteeRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewInviteeRepository(NewStore())

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotNil(t, got)

	_, err = repo.Save(ctx, domain.NewInvitee("John Doe (0)", "john@email.me"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, domain.NewInvitee("Jane Roe (1)", "jane@email.me"))
	require.NoError(t, err)

	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []*domain.Invitee{
		{Invitee: "Jane Roe (1)", Email: "jane@email.me"},
		{Invitee: "John Doe (0)", Email: "john@email.me"},
	}, got)
}

func TestInviteeRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewInviteeRepository(NewStore())

	_, err := repo.Save(ctx, domain.NewInvitee("John", "john@email.me"))
	require.ErrorIs(t, err, context.Canceled)
	_, err = repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

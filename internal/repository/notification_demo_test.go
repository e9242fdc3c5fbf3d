package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kakeibo-dashboard/internal/domain"
)

func TestDemoNotificationRepository_NeverPersists(t *testing.T) {
	repo := NewDemoNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	notif := newNotification(userID, "Demo only")
	require.NoError(t, repo.Create(ctx, notif))

	assert.True(t, strings.HasPrefix(notif.ID, "demo-"), "demo ids must be recognizably synthetic, got %q", notif.ID)
	assert.False(t, notif.IsRead)
	assert.False(t, notif.CreatedAt.IsZero())

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list, "a demo create must not show up in a subsequent list")
}

func TestDemoNotificationRepository_MutationsSucceedWithoutStorage(t *testing.T) {
	repo := NewDemoNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	notif, err := repo.MarkAsRead(ctx, "demo-whatever", userID)
	require.NoError(t, err)
	assert.True(t, notif.IsRead)

	assert.NoError(t, repo.Delete(ctx, "demo-whatever", userID))

	removed, err := repo.DeleteAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = repo.GetByID(ctx, "demo-whatever", userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

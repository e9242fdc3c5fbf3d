package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kakeibo-dashboard/internal/domain"
)

func newNotification(userID uuid.UUID, title string) *domain.Notification {
	return &domain.Notification{
		UserID:   userID,
		Type:     "expense_reminder",
		Title:    title,
		Message:  "message for " + title,
		Priority: domain.PriorityMedium,
	}
}

func TestMemoryNotificationRepository_OwnershipIsolation(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()

	notif := newNotification(owner, "Rent due")
	require.NoError(t, repo.Create(ctx, notif))
	require.NotEmpty(t, notif.ID)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, notif.ID, stranger)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("MarkAsRead", func(t *testing.T) {
		got, err := repo.MarkAsRead(ctx, notif.ID, stranger)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, got)

		// The owner's record must be untouched.
		own, err := repo.GetByID(ctx, notif.ID, owner)
		require.NoError(t, err)
		assert.False(t, own.IsRead)
	})

	t.Run("Delete", func(t *testing.T) {
		err := repo.Delete(ctx, notif.ID, stranger)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		own, err := repo.GetByID(ctx, notif.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, notif.ID, own.ID)
	})

	t.Run("List", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, stranger)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestMemoryNotificationRepository_MarkAsReadIdempotent(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	notif := newNotification(userID, "Pay electricity")
	require.NoError(t, repo.Create(ctx, notif))

	first, err := repo.MarkAsRead(ctx, notif.ID, userID)
	require.NoError(t, err)
	assert.True(t, first.IsRead)

	second, err := repo.MarkAsRead(ctx, notif.ID, userID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)
}

func TestMemoryNotificationRepository_DeleteTwice(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	notif := newNotification(userID, "One-shot")
	require.NoError(t, repo.Create(ctx, notif))

	require.NoError(t, repo.Delete(ctx, notif.ID, userID))
	assert.ErrorIs(t, repo.Delete(ctx, notif.ID, userID), domain.ErrNotFound)
}

func TestMemoryNotificationRepository_DeleteAllByUser(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newNotification(alice, "alice")))
	}
	require.NoError(t, repo.Create(ctx, newNotification(bob, "bob")))

	removed, err := repo.DeleteAllByUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	aliceList, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, aliceList)

	bobList, err := repo.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, bobList, 1)
}

func TestMemoryNotificationRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, repo.Create(ctx, newNotification(userID, title)))
		time.Sleep(time.Millisecond)
	}

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "first", list[2].Title)
}

package notification_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/repository"
	"kakeibo-dashboard/internal/service/notification"
)

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockNotificationRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestNotificationService_CreateValidation(t *testing.T) {
	mockRepo := new(mockNotificationRepository)
	svc := notification.NewService(mockRepo, nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("empty title", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
			Message: "body",
			Type:    "system",
		})

		var validationErrs *domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		require.Len(t, validationErrs.Fields, 1)
		assert.Equal(t, "Title", validationErrs.Fields[0].Field)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("title too long", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
			Title:   strings.Repeat("あ", 101),
			Message: "body",
			Type:    "system",
		})

		var validationErrs *domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Equal(t, "Title", validationErrs.Fields[0].Field)
	})

	t.Run("bad priority", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
			Title:    "ok",
			Message:  "body",
			Type:     "system",
			Priority: "urgent",
		})

		var validationErrs *domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Equal(t, "Priority", validationErrs.Fields[0].Field)
	})

	t.Run("bad target date", func(t *testing.T) {
		bad := "25th of June"
		_, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
			Title:      "ok",
			Message:    "body",
			Type:       "system",
			TargetDate: &bad,
		})

		var validationErrs *domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Equal(t, "TargetDate", validationErrs.Fields[0].Field)
	})

	t.Run("multiple violations reported together", func(t *testing.T) {
		_, err := svc.Create(ctx, userID, domain.CreateNotificationInput{})

		var validationErrs *domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		assert.Len(t, validationErrs.Fields, 3)
	})
}

func TestNotificationService_CreateDefaultsPriority(t *testing.T) {
	repo := repository.NewMemoryNotificationRepository()
	svc := notification.NewService(repo, nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	notif, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
		Title:   "No priority given",
		Message: "defaults to medium",
		Type:    "system",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, notif.Priority)
	assert.False(t, notif.IsRead)
}

func TestNotificationService_RepositoryErrorPassthrough(t *testing.T) {
	mockRepo := new(mockNotificationRepository)
	svc := notification.NewService(mockRepo, nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	boom := errors.New("connection reset")
	mockRepo.On("ListByUser", ctx, userID).Return(nil, boom).Once()

	_, err := svc.List(ctx, userID)
	assert.ErrorIs(t, err, boom)
	mockRepo.AssertExpectations(t)
}

func TestNotificationService_MarkAsReadNotFound(t *testing.T) {
	mockRepo := new(mockNotificationRepository)
	svc := notification.NewService(mockRepo, nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	mockRepo.On("MarkAsRead", ctx, "missing", userID).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.MarkAsRead(ctx, userID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

// Full lifecycle against the in-memory store, mirroring the dashboard's
// bill-reminder flow.
func TestNotificationService_Lifecycle(t *testing.T) {
	repo := repository.NewMemoryNotificationRepository()
	svc := notification.NewService(repo, nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	targetDate := "2025-06-25"
	created, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
		Title:      "家賃の支払い期限",
		Message:    "25日までに振り込みをお願いします",
		Type:       "expense_reminder",
		TargetDate: &targetDate,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.TargetDate)
	assert.Equal(t, "2025-06-25", created.TargetDate.Format("2006-01-02"))

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsRead)

	read, err := svc.MarkAsRead(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	list, err = svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)

	require.NoError(t, svc.Delete(ctx, userID, created.ID))

	list, err = svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, svc.Delete(ctx, userID, created.ID), domain.ErrNotFound)
}

func TestNotificationService_ClearAllScopedToOwner(t *testing.T) {
	repo := repository.NewMemoryNotificationRepository()
	svc := notification.NewService(repo, nil, nil)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, alice, domain.CreateNotificationInput{
			Title:   "alice",
			Message: "m",
			Type:    "system",
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, bob, domain.CreateNotificationInput{
		Title:   "bob",
		Message: "m",
		Type:    "system",
	})
	require.NoError(t, err)

	removed, err := svc.ClearAll(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	bobList, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, bobList, 1)
}

func TestNotificationService_DemoMode(t *testing.T) {
	svc := notification.NewService(repository.NewDemoNotificationRepository(), nil, nil)
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, domain.CreateNotificationInput{
		Title:   "Demo alert",
		Message: "not persisted",
		Type:    "system",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "demo-"))

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Mutations still report success so the demo UI behaves normally.
	_, err = svc.MarkAsRead(ctx, userID, created.ID)
	assert.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, userID, created.ID))
}

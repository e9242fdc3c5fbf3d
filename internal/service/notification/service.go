package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/repository"
	"kakeibo-dashboard/internal/service/email"
	"kakeibo-dashboard/internal/validation"
)

// Service is the notification lifecycle core: validation and defaulting on
// create, ownership-scoped reads and mutations, monotonic read flag, bulk
// clear. The backing store decides persistence; in demo deployments it is
// the non-persistent demo repository and nothing here changes.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	Get(ctx context.Context, userID uuid.UUID, id string) (*domain.Notification, error)
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateNotificationInput) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, id string) (*domain.Notification, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	ClearAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	notifications, err := s.notifRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, id string) (*domain.Notification, error) {
	return s.notifRepo.GetByID(ctx, id, userID)
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateNotificationInput) (*domain.Notification, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	priority := domain.NotificationPriority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	var targetDate *time.Time
	if input.TargetDate != nil {
		parsed, err := time.Parse("2006-01-02", *input.TargetDate)
		if err != nil {
			return nil, &domain.ValidationErrors{Fields: []domain.FieldError{
				{Field: "TargetDate", Message: "must be a date in 2006-01-02 format"},
			}}
		}
		targetDate = &parsed
	}

	var data json.RawMessage
	if len(input.Data) > 0 {
		encoded, err := json.Marshal(input.Data)
		if err != nil {
			return nil, err
		}
		data = encoded
	}

	notif := &domain.Notification{
		UserID:     userID,
		Type:       input.Type,
		Title:      input.Title,
		Message:    input.Message,
		TargetDate: targetDate,
		Priority:   priority,
		Data:       data,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, err
	}

	if notif.Priority == domain.PriorityHigh && s.emailSvc != nil && s.userRepo != nil {
		go s.sendHighPriorityEmail(notif.UserID, notif.Title, notif.Message)
	}

	return notif, nil
}

func (s *service) MarkAsRead(ctx context.Context, userID uuid.UUID, id string) (*domain.Notification, error) {
	return s.notifRepo.MarkAsRead(ctx, id, userID)
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	return s.notifRepo.Delete(ctx, id, userID)
}

func (s *service) ClearAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.DeleteAllByUser(ctx, userID)
}

func (s *service) sendHighPriorityEmail(userID uuid.UUID, title, message string) {
	ctx := context.Background()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil || user.Email == "" {
		return
	}

	if err := s.emailSvc.SendNotificationEmail(ctx, user.Email, user.FullName, title, message); err != nil {
		log.Printf("Failed to send notification email to %s: %v", user.Email, err)
	}
}

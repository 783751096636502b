package notification

import (
	"context"
	"errors"
	"strings"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) (*domain.Notification, error)
}

type Service struct {
	notifications Repository
}

func NewService(notifications Repository) *Service {
	return &Service{notifications: notifications}
}

// Create sends a notification to one user, or to everyone when UserID is nil.
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrValidation
	}

	typ := domain.NotificationType(req.Type)
	if typ == "" {
		typ = domain.NotifSystem
	}

	n := &domain.Notification{
		UserID:  req.UserID,
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
		Type:    typ,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.notifications.ListForUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Notification, error) {
	return s.notifications.ListForUser(ctx, 0)
}

// MarkRead lets a user mark their own notifications and broadcasts; staff
// can mark any.
func (s *Service) MarkRead(ctx context.Context, id, actorID int64, actorRole string) (*domain.Notification, error) {
	n, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actorRole == string(domain.RoleGuest) && n.UserID != nil && *n.UserID != actorID {
		return nil, ErrForbidden
	}

	return s.notifications.MarkRead(ctx, id)
}

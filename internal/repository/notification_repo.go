package repository

import (
	"context"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	var n domain.Notification
	tx := r.db.WithContext(ctx).First(&n, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &n, nil
}

// ListForUser returns the user's notifications plus broadcasts (user_id NULL).
// A zero userID lists everything (admin view).
func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	var ns []domain.Notification
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if userID > 0 {
		q = q.Where("user_id = ? OR user_id IS NULL", userID)
	}
	tx := q.Find(&ns)
	return ns, tx.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

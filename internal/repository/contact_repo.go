package repository

import (
	"context"
	"time"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	var c domain.Contact
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	var cs []domain.Contact
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&cs)
	return cs, tx.Error
}

func (r *ContactRepository) SaveReply(ctx context.Context, id int64, reply string, at time.Time) (*domain.Contact, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reply":      reply,
			"status":     string(domain.ContactReplied),
			"replied_at": at,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Contact{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

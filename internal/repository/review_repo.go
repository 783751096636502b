package repository

import (
	"context"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	return r.db.WithContext(ctx).Create(rev).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rev domain.Review
	tx := r.db.WithContext(ctx).First(&rev, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rev, nil
}

func (r *ReviewRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Review, error) {
	var revs []domain.Review
	tx := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&revs)
	return revs, tx.Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) CreateReply(ctx context.Context, reply *domain.ReviewReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *ReviewRepository) ListReplies(ctx context.Context, reviewID int64) ([]domain.ReviewReply, error) {
	var replies []domain.ReviewReply
	tx := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("created_at ASC").
		Find(&replies)
	return replies, tx.Error
}

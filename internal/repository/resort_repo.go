package repository

import (
	"context"
	"time"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type ResortRepository struct {
	db *gorm.DB
}

func NewResortRepository(db *gorm.DB) *ResortRepository {
	return &ResortRepository{db: db}
}

func (r *ResortRepository) Create(ctx context.Context, resort *domain.Resort) error {
	return r.db.WithContext(ctx).Create(resort).Error
}

func (r *ResortRepository) GetByID(ctx context.Context, id int64) (*domain.Resort, error) {
	var resort domain.Resort
	tx := r.db.WithContext(ctx).First(&resort, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &resort, nil
}

func (r *ResortRepository) List(ctx context.Context) ([]domain.Resort, error) {
	var resorts []domain.Resort
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&resorts)
	return resorts, tx.Error
}

func (r *ResortRepository) Update(ctx context.Context, resort *domain.Resort) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Resort{}).
		Where("id = ?", resort.ID).
		Updates(map[string]interface{}{
			"name":       resort.Name,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ResortRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Resort{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ResortRepository) CountRooms(ctx context.Context, resortID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("resort_id = ?", resortID).
		Count(&cnt)
	return cnt, tx.Error
}

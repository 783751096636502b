package repository

import (
	"context"
	"errors"
	"time"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type RoomDetailRepository struct {
	db *gorm.DB
}

func NewRoomDetailRepository(db *gorm.DB) *RoomDetailRepository {
	return &RoomDetailRepository{db: db}
}

func (r *RoomDetailRepository) GetByRoomID(ctx context.Context, roomID int64) (*domain.RoomDetail, error) {
	var d domain.RoomDetail
	tx := r.db.WithContext(ctx).Where("room_id = ?", roomID).First(&d)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

// Upsert creates the detail row on first write, updates it afterwards.
func (r *RoomDetailRepository) Upsert(ctx context.Context, d *domain.RoomDetail) error {
	var existing domain.RoomDetail
	err := r.db.WithContext(ctx).Where("room_id = ?", d.RoomID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(d).Error
	}
	if err != nil {
		return err
	}

	d.ID = existing.ID
	return r.db.WithContext(ctx).
		Model(&domain.RoomDetail{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"description":     d.Description,
			"features":        d.Features,
			"images":          d.Images,
			"num_bed":         d.NumBed,
			"price_per_night": d.PricePerNight,
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (r *RoomDetailRepository) DeleteByRoomID(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&domain.RoomDetail{}).Error
}

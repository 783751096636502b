package repository

import (
	"context"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	tx := r.db.WithContext(ctx).First(&rt, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rt, nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var rts []domain.RoomType
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&rts)
	return rts, tx.Error
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.RoomType{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomTypeRepository) CountRooms(ctx context.Context, roomTypeID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("room_type_id = ?", roomTypeID).
		Count(&cnt)
	return cnt, tx.Error
}

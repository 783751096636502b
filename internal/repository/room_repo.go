package repository

import (
	"context"
	"time"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ResortID   int64     `gorm:"column:resort_id"`
	RoomTypeID int64     `gorm:"column:room_type_id"`
	Location   string    `gorm:"column:location"`
	Address    string    `gorm:"column:address"`
	Status     string    `gorm:"column:status"`
	Category   string    `gorm:"column:category"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:         m.ID,
		ResortID:   m.ResortID,
		RoomTypeID: m.RoomTypeID,
		Location:   m.Location,
		Address:    m.Address,
		Status:     domain.RoomStatus(m.Status),
		Category:   m.Category,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := roomModel{
		ResortID:   room.ResortID,
		RoomTypeID: room.RoomTypeID,
		Location:   room.Location,
		Address:    room.Address,
		Status:     string(room.Status),
		Category:   room.Category,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", room.ID).
		Updates(map[string]interface{}{
			"resort_id":    room.ResortID,
			"room_type_id": room.RoomTypeID,
			"location":     room.Location,
			"address":      room.Address,
			"status":       string(room.Status),
			"category":     room.Category,
			"updated_at":   time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) CountBookings(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Count(&cnt)
	return cnt, tx.Error
}

// RoomRow is the catalog listing view: room joined with its type, resort and
// detail record. ActualPrice resolves the per-room override against the type
// default.
type RoomRow struct {
	ID           int64     `gorm:"column:id" json:"id"`
	ResortID     int64     `gorm:"column:resort_id" json:"resort_id"`
	ResortName   string    `gorm:"column:resort_name" json:"resort_name"`
	RoomTypeID   int64     `gorm:"column:room_type_id" json:"room_type_id"`
	RoomType     string    `gorm:"column:room_type" json:"room_type"`
	DefaultPrice float64   `gorm:"column:default_price" json:"default_price"`
	ActualPrice  float64   `gorm:"column:actual_price" json:"actual_price"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	Features     *string   `gorm:"column:features" json:"features,omitempty"`
	Images       *string   `gorm:"column:images" json:"images,omitempty"`
	NumBed       *string   `gorm:"column:num_bed" json:"num_bed,omitempty"`
	Status       string    `gorm:"column:status" json:"status"`
	Category     string    `gorm:"column:category" json:"category"`
	Location     string    `gorm:"column:location" json:"location"`
	Address      string    `gorm:"column:address" json:"address"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

const roomSelect = `
SELECT r.id, r.resort_id, res.name AS resort_name,
       r.room_type_id, rt.name AS room_type,
       rt.price_per_night AS default_price,
       COALESCE(rd.price_per_night, rt.price_per_night) AS actual_price,
       rd.description, rd.features, rd.images AS images, rd.num_bed,
       r.status, r.category, r.location, r.address,
       r.created_at, r.updated_at
FROM rooms r
JOIN room_types rt ON r.room_type_id = rt.id
JOIN resorts res ON r.resort_id = res.id
LEFT JOIN room_details rd ON rd.room_id = r.id
`

type RoomFilter struct {
	ResortID int64
	Location string
	RoomType string
}

func (r *RoomRepository) ListRows(ctx context.Context, f RoomFilter) ([]RoomRow, error) {
	var rows []RoomRow
	q := roomSelect + "WHERE 1=1"
	args := []interface{}{}
	if f.ResortID > 0 {
		q += " AND r.resort_id = ?"
		args = append(args, f.ResortID)
	}
	if f.Location != "" {
		q += " AND LOWER(r.location) LIKE LOWER(?)"
		args = append(args, "%"+f.Location+"%")
	}
	if f.RoomType != "" {
		q += " AND rt.name = ?"
		args = append(args, f.RoomType)
	}
	q += " ORDER BY r.created_at DESC"

	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	return rows, tx.Error
}

func (r *RoomRepository) GetRowByID(ctx context.Context, id int64) (*RoomRow, error) {
	var row RoomRow
	tx := r.db.WithContext(ctx).Raw(roomSelect+"WHERE r.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// GetEffectivePrice returns the nightly price for a room, preferring the
// room-detail override.
func (r *RoomRepository) GetEffectivePrice(ctx context.Context, roomID int64) (float64, error) {
	var price float64
	q := `
SELECT COALESCE(rd.price_per_night, rt.price_per_night)
FROM rooms r
JOIN room_types rt ON r.room_type_id = rt.id
LEFT JOIN room_details rd ON rd.room_id = r.id
WHERE r.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, roomID).Scan(&price)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return price, nil
}

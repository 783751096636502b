package repository

import (
	"context"
	"time"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	BookingCode string    `gorm:"column:booking_code"`
	UserID      int64     `gorm:"column:user_id"`
	RoomID      int64     `gorm:"column:room_id"`
	CheckIn     time.Time `gorm:"column:check_in"`
	CheckOut    time.Time `gorm:"column:check_out"`
	NightlyRate float64   `gorm:"column:nightly_rate"`
	TotalAmount float64   `gorm:"column:total_amount"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		BookingCode: m.BookingCode,
		UserID:      m.UserID,
		RoomID:      m.RoomID,
		CheckIn:     m.CheckIn,
		CheckOut:    m.CheckOut,
		NightlyRate: m.NightlyRate,
		TotalAmount: m.TotalAmount,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		BookingCode: b.BookingCode,
		UserID:      b.UserID,
		RoomID:      b.RoomID,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		NightlyRate: b.NightlyRate,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetByIDForUser returns the booking only when it belongs to userID.
func (r *BookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

// UserBookingRow is a history entry joined with the room's resort and images.
type UserBookingRow struct {
	ID          int64     `gorm:"column:id" json:"id"`
	BookingCode string    `gorm:"column:booking_code" json:"booking_code"`
	CheckIn     time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut    time.Time `gorm:"column:check_out" json:"check_out"`
	TotalAmount float64   `gorm:"column:total_amount" json:"total_amount"`
	Status      string    `gorm:"column:status" json:"status"`
	ResortName  string    `gorm:"column:resort_name" json:"resort_name"`
	Images      *string   `gorm:"column:images" json:"images,omitempty"`
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]UserBookingRow, error) {
	var rows []UserBookingRow
	q := `
SELECT b.id, b.booking_code, b.check_in, b.check_out, b.total_amount, b.status,
       res.name AS resort_name, rd.images AS images
FROM bookings b
JOIN rooms r ON b.room_id = r.id
JOIN resorts res ON r.resort_id = res.id
LEFT JOIN room_details rd ON rd.room_id = r.id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	return rows, tx.Error
}

// BookingDetailRow is the admin/detail view joined with user and room info.
type BookingDetailRow struct {
	ID          int64     `gorm:"column:id" json:"id"`
	BookingCode string    `gorm:"column:booking_code" json:"booking_code"`
	CheckIn     time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut    time.Time `gorm:"column:check_out" json:"check_out"`
	NightlyRate float64   `gorm:"column:nightly_rate" json:"nightly_rate"`
	TotalAmount float64   `gorm:"column:total_amount" json:"total_amount"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	FullName    string    `gorm:"column:full_name" json:"full_name"`
	Email       string    `gorm:"column:email" json:"email"`
	Phone       string    `gorm:"column:phone" json:"phone,omitempty"`
	ResortName  string    `gorm:"column:resort_name" json:"resort_name"`
	Location    string    `gorm:"column:location" json:"location"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Images      *string   `gorm:"column:images" json:"images,omitempty"`
}

func (r *BookingRepository) GetDetailByID(ctx context.Context, id int64) (*BookingDetailRow, error) {
	var row BookingDetailRow
	q := `
SELECT b.id, b.booking_code, b.check_in, b.check_out, b.nightly_rate, b.total_amount,
       b.status, b.created_at,
       u.full_name, u.email, u.phone,
       res.name AS resort_name, r.location,
       rd.description, rd.images AS images
FROM bookings b
JOIN users u ON b.user_id = u.id
JOIN rooms r ON b.room_id = r.id
JOIN resorts res ON r.resort_id = res.id
LEFT JOIN room_details rd ON rd.room_id = r.id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *BookingRepository) List(ctx context.Context, status string, limit, offset int) ([]BookingDetailRow, error) {
	var rows []BookingDetailRow
	q := `
SELECT b.id, b.booking_code, b.check_in, b.check_out, b.nightly_rate, b.total_amount,
       b.status, b.created_at,
       u.full_name, u.email, u.phone,
       res.name AS resort_name, r.location,
       NULL AS description, NULL AS images
FROM bookings b
JOIN users u ON b.user_id = u.id
JOIN rooms r ON b.room_id = r.id
JOIN resorts res ON r.resort_id = res.id
`
	args := []interface{}{}
	if status != "" {
		q += "WHERE b.status = ?\n"
		args = append(args, status)
	}
	q += "ORDER BY b.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	return rows, tx.Error
}

func (r *BookingRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *BookingRepository) CountByMonth(ctx context.Context, month, year int) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE CAST(strftime('%m', check_in) AS INTEGER) = ? AND CAST(strftime('%Y', check_in) AS INTEGER) = ?
`
	if r.db.Dialector.Name() == "postgres" {
		q = `
SELECT COUNT(1)
FROM bookings
WHERE EXTRACT(MONTH FROM check_in) = ? AND EXTRACT(YEAR FROM check_in) = ?
`
	}
	tx := r.db.WithContext(ctx).Raw(q, month, year).Scan(&cnt)
	return cnt, tx.Error
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// StatsRepository aggregates revenue and payment figures out of completed
// payments. Month extraction differs between sqlite and postgres, so the
// queries branch on the dialector.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type RevenueTotals struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalRefunded float64 `json:"total_refunded"`
	NetRevenue    float64 `json:"net_revenue"`
	PaymentCount  int64   `json:"payment_count"`
}

type MonthlyRevenueRow struct {
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

type RoomTypeRevenueRow struct {
	RoomTypeID   int64   `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	Revenue      float64 `json:"revenue"`
	Bookings     int64   `json:"bookings"`
}

type MethodStatsRow struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
}

type TopRoomRow struct {
	RoomID   int64  `json:"room_id"`
	Location string `json:"location"`
	RoomType string `json:"room_type"`
	Resort   string `json:"resort"`
	Bookings int64  `json:"bookings"`
}

func (r *StatsRepository) monthExpr(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%m', " + column + ") AS INTEGER)"
	}
	return "EXTRACT(MONTH FROM " + column + ")::int"
}

func (r *StatsRepository) yearExpr(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', " + column + ") AS INTEGER)"
	}
	return "EXTRACT(YEAR FROM " + column + ")::int"
}

// RevenueTotals sums completed and refunded payments in [from, to). Zero
// bounds mean unbounded on that side.
func (r *StatsRepository) RevenueTotals(ctx context.Context, from, to time.Time) (*RevenueTotals, error) {
	q := r.db.WithContext(ctx).
		Table("payments").
		Select(`
			COALESCE(SUM(CASE WHEN status IN ('completed', 'refunded') THEN amount ELSE 0 END), 0) AS total_revenue,
			COALESCE(SUM(CASE WHEN status = 'refunded' THEN COALESCE(refund_amount, 0) ELSE 0 END), 0) AS total_refunded,
			SUM(CASE WHEN status IN ('completed', 'refunded') THEN 1 ELSE 0 END) AS payment_count`)
	if !from.IsZero() {
		q = q.Where("transaction_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("transaction_date < ?", to)
	}

	var out RevenueTotals
	if err := q.Scan(&out).Error; err != nil {
		return nil, err
	}
	out.NetRevenue = out.TotalRevenue - out.TotalRefunded
	return &out, nil
}

// MonthlyRevenue breaks completed payment revenue down per month of a year.
func (r *StatsRepository) MonthlyRevenue(ctx context.Context, year int) ([]MonthlyRevenueRow, error) {
	monthCol := r.monthExpr("transaction_date")
	yearCol := r.yearExpr("transaction_date")

	var rows []MonthlyRevenueRow
	err := r.db.WithContext(ctx).
		Table("payments").
		Select(monthCol+" AS month, "+yearCol+" AS year, COALESCE(SUM(amount), 0) AS revenue, COUNT(*) AS count").
		Where("status IN ('completed', 'refunded')").
		Where(yearCol+" = ?", year).
		Group(monthCol + ", " + yearCol).
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

// RevenueByRoomType attributes completed payment revenue to the booked
// room's type.
func (r *StatsRepository) RevenueByRoomType(ctx context.Context) ([]RoomTypeRevenueRow, error) {
	var rows []RoomTypeRevenueRow
	err := r.db.WithContext(ctx).
		Table("payments").
		Select(`room_types.id AS room_type_id, room_types.name AS room_type_name,
			COALESCE(SUM(payments.amount), 0) AS revenue, COUNT(DISTINCT bookings.id) AS bookings`).
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("payments.status IN ('completed', 'refunded')").
		Group("room_types.id, room_types.name").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

// PaymentStatsByMethod counts and sums completed payments per method.
func (r *StatsRepository) PaymentStatsByMethod(ctx context.Context) ([]MethodStatsRow, error) {
	var rows []MethodStatsRow
	err := r.db.WithContext(ctx).
		Table("payments").
		Select("payment_method, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("status IN ('completed', 'refunded')").
		Group("payment_method").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}

// TopBookedRooms ranks rooms by booking count, excluding cancelled bookings.
func (r *StatsRepository) TopBookedRooms(ctx context.Context, limit int) ([]TopRoomRow, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []TopRoomRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`rooms.id AS room_id, rooms.location, room_types.name AS room_type,
			resorts.name AS resort, COUNT(bookings.id) AS bookings`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Joins("JOIN resorts ON resorts.id = rooms.resort_id").
		Where("bookings.status <> 'cancelled'").
		Group("rooms.id, rooms.location, room_types.name, resorts.name").
		Order("bookings DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

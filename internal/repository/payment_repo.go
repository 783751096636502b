package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"resort-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	TransactionCode string     `gorm:"column:transaction_code"`
	BookingID       int64      `gorm:"column:booking_id"`
	UserID          int64      `gorm:"column:user_id"`
	PaymentMethod   string     `gorm:"column:payment_method"`
	Amount          float64    `gorm:"column:amount"`
	DiscountID      *int64     `gorm:"column:discount_id"`
	Status          string     `gorm:"column:status"`
	TransactionDate time.Time  `gorm:"column:transaction_date"`
	PaidAt          *time.Time `gorm:"column:paid_at"`
	RefundAmount    *float64   `gorm:"column:refund_amount"`
	RefundedAt      *time.Time `gorm:"column:refunded_at"`
	RefundReason    *string    `gorm:"column:refund_reason"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	var reason string
	if m.RefundReason != nil {
		reason = *m.RefundReason
	}
	return &domain.Payment{
		ID:              m.ID,
		TransactionCode: m.TransactionCode,
		BookingID:       m.BookingID,
		UserID:          m.UserID,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		Amount:          m.Amount,
		DiscountID:      m.DiscountID,
		Status:          domain.PaymentStatus(m.Status),
		TransactionDate: m.TransactionDate,
		PaidAt:          m.PaidAt,
		RefundAmount:    m.RefundAmount,
		RefundedAt:      m.RefundedAt,
		RefundReason:    reason,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	var reason *string
	if p.RefundReason != "" {
		v := p.RefundReason
		reason = &v
	}
	return paymentModel{
		ID:              p.ID,
		TransactionCode: p.TransactionCode,
		BookingID:       p.BookingID,
		UserID:          p.UserID,
		PaymentMethod:   string(p.PaymentMethod),
		Amount:          p.Amount,
		DiscountID:      p.DiscountID,
		Status:          string(p.Status),
		TransactionDate: p.TransactionDate,
		PaidAt:          p.PaidAt,
		RefundAmount:    p.RefundAmount,
		RefundedAt:      p.RefundedAt,
		RefundReason:    reason,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

// HasCompletedForBooking reports whether a completed payment already exists.
// The partial unique index on (booking_id) WHERE status='completed' backstops
// this check under concurrency.
func (r *PaymentRepository) HasCompletedForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("booking_id = ? AND status = ?", bookingID, string(domain.PaymentCompleted)).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *PaymentRepository) MarkCompleted(ctx context.Context, id int64, paidAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(domain.PaymentCompleted),
			"paid_at": paidAt,
		}).Error
}

func (r *PaymentRepository) MarkRefunded(ctx context.Context, id int64, amount float64, reason string, at time.Time) error {
	updates := map[string]interface{}{
		"status":        string(domain.PaymentRefunded),
		"refund_amount": amount,
		"refunded_at":   at,
	}
	if reason != "" {
		updates["refund_reason"] = reason
	}
	return r.db.WithContext(ctx).
		Model(&paymentModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// UserPaymentRow is a payment history entry joined with its booking and resort.
type UserPaymentRow struct {
	ID              int64      `gorm:"column:id" json:"id"`
	TransactionCode string     `gorm:"column:transaction_code" json:"transaction_code"`
	Amount          float64    `gorm:"column:amount" json:"amount"`
	PaymentMethod   string     `gorm:"column:payment_method" json:"payment_method"`
	Status          string     `gorm:"column:status" json:"status"`
	TransactionDate time.Time  `gorm:"column:transaction_date" json:"transaction_date"`
	PaidAt          *time.Time `gorm:"column:paid_at" json:"paid_at,omitempty"`
	BookingCode     string     `gorm:"column:booking_code" json:"booking_code"`
	CheckIn         time.Time  `gorm:"column:check_in" json:"check_in"`
	CheckOut        time.Time  `gorm:"column:check_out" json:"check_out"`
	ResortName      string     `gorm:"column:resort_name" json:"resort_name"`
	Location        string     `gorm:"column:location" json:"location"`
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64) ([]UserPaymentRow, error) {
	var rows []UserPaymentRow
	q := `
SELECT p.id, p.transaction_code, p.amount, p.payment_method, p.status,
       p.transaction_date, p.paid_at,
       b.booking_code, b.check_in, b.check_out,
       res.name AS resort_name, r.location
FROM payments p
JOIN bookings b ON p.booking_id = b.id
JOIN rooms r ON b.room_id = r.id
JOIN resorts res ON r.resort_id = res.id
WHERE p.user_id = ?
ORDER BY p.transaction_date DESC
`
	tx := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows)
	return rows, tx.Error
}

type PaymentListFilter struct {
	Status        string
	PaymentMethod string
	StartDate     *time.Time
	EndDate       *time.Time
	Limit         int
	Offset        int
}

func (r *PaymentRepository) List(ctx context.Context, f PaymentListFilter) ([]UserPaymentRow, error) {
	var rows []UserPaymentRow
	q := `
SELECT p.id, p.transaction_code, p.amount, p.payment_method, p.status,
       p.transaction_date, p.paid_at,
       b.booking_code, b.check_in, b.check_out,
       res.name AS resort_name, r.location
FROM payments p
JOIN bookings b ON p.booking_id = b.id
JOIN rooms r ON b.room_id = r.id
JOIN resorts res ON r.resort_id = res.id
WHERE 1=1
`
	args := []interface{}{}
	if f.Status != "" {
		q += " AND p.status = ?"
		args = append(args, f.Status)
	}
	if f.PaymentMethod != "" {
		q += " AND p.payment_method = ?"
		args = append(args, f.PaymentMethod)
	}
	if f.StartDate != nil && f.EndDate != nil {
		q += " AND p.transaction_date BETWEEN ? AND ?"
		args = append(args, *f.StartDate, *f.EndDate)
	}
	q += " ORDER BY p.transaction_date DESC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset)

	tx := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows)
	return rows, tx.Error
}

// IsUniqueViolation detects duplicate-key failures from both PostgreSQL
// (pgconn code 23505) and SQLite (message match).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "unique") || strings.Contains(lc, "duplicate")
}

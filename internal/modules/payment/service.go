package payment

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service runs the payment lifecycle. Both Pay and Refund execute as a
// single database transaction so a failure leaves booking, payment, room
// and discount usage untouched.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func newTransactionCode() string {
	return "PAY-" + strings.ToUpper(uuid.NewString()[:8])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Pay charges a pending booking: it applies an optional discount code,
// records a completed payment and confirms the booking. A second completed
// payment for the same booking is rejected, backed by the partial unique
// index under concurrency.
func (s *Service) Pay(ctx context.Context, userID int64, req CreatePaymentRequest) (*domain.Payment, error) {
	method := domain.PaymentMethod(req.PaymentMethod)
	if !domain.ValidPaymentMethod(method) {
		return nil, ErrValidation
	}

	var out *domain.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := repository.NewBookingRepository(tx)
		payments := repository.NewPaymentRepository(tx)

		b, err := bookings.GetByIDForUser(ctx, req.BookingID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if _, lookupErr := bookings.GetByID(ctx, req.BookingID); lookupErr == nil {
					return ErrForbidden
				}
				return ErrBookingNotFound
			}
			return err
		}

		paid, err := payments.HasCompletedForBooking(ctx, b.ID)
		if err != nil {
			return err
		}
		if paid {
			return ErrAlreadyPaid
		}

		now := s.now()
		amount := b.TotalAmount
		var discountID *int64
		if code := strings.TrimSpace(req.DiscountCode); code != "" {
			discounts := repository.NewDiscountRepository(tx)
			d, err := discounts.GetActiveByCode(ctx, code, now)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrDiscountInvalid
				}
				return err
			}
			if err := discounts.IncrementUsage(ctx, d.ID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrDiscountExhausted
				}
				return err
			}
			amount = round2(d.Apply(amount))
			discountID = &d.ID
		}

		p := &domain.Payment{
			TransactionCode: newTransactionCode(),
			BookingID:       b.ID,
			UserID:          userID,
			PaymentMethod:   method,
			Amount:          amount,
			DiscountID:      discountID,
			Status:          domain.PaymentPending,
			TransactionDate: now,
		}
		if err := payments.Create(ctx, p); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrAlreadyPaid
			}
			return err
		}

		if err := payments.MarkCompleted(ctx, p.ID, now); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrAlreadyPaid
			}
			return err
		}
		p.Status = domain.PaymentCompleted
		p.PaidAt = &now

		if err := bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed); err != nil {
			return err
		}
		if err := repository.NewRoomRepository(tx).UpdateStatus(ctx, b.RoomID, domain.RoomReserved); err != nil {
			return err
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, userID, "Payment received",
		"Payment "+out.TransactionCode+" has been completed and your booking is confirmed.")
	return out, nil
}

// Refund reverses a completed payment. The booking is cancelled and its
// room released, matching the cancellation path.
func (s *Service) Refund(ctx context.Context, paymentID int64, req RefundRequest) (*domain.Payment, error) {
	var out *domain.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payments := repository.NewPaymentRepository(tx)

		p, err := payments.GetByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Status != domain.PaymentCompleted {
			return ErrNotRefundable
		}
		if req.Amount <= 0 {
			return ErrValidation
		}
		if req.Amount > p.Amount {
			return ErrRefundTooLarge
		}

		now := s.now()
		if err := payments.MarkRefunded(ctx, p.ID, req.Amount, req.Reason, now); err != nil {
			return err
		}

		bookings := repository.NewBookingRepository(tx)
		b, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			return err
		}
		if err := bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
			return err
		}
		if err := repository.NewRoomRepository(tx).UpdateStatus(ctx, b.RoomID, domain.RoomAvailable); err != nil {
			return err
		}

		p.Status = domain.PaymentRefunded
		p.RefundAmount = &req.Amount
		p.RefundedAt = &now
		p.RefundReason = req.Reason
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, out.UserID, "Payment refunded",
		"Payment "+out.TransactionCode+" has been refunded and the booking cancelled.")
	return out, nil
}

func (s *Service) MyPayments(ctx context.Context, userID int64) ([]repository.UserPaymentRow, error) {
	return repository.NewPaymentRepository(s.db).ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := repository.NewPaymentRepository(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, f repository.PaymentListFilter) ([]repository.UserPaymentRow, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return repository.NewPaymentRepository(s.db).List(ctx, f)
}

// notify is best effort: a failed notification never fails the payment.
func (s *Service) notify(ctx context.Context, userID int64, title, content string) {
	uid := userID
	_ = repository.NewNotificationRepository(s.db).Create(ctx, &domain.Notification{
		UserID:  &uid,
		Title:   title,
		Content: content,
		Type:    domain.NotifPayment,
	})
}

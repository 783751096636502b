package booking

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

const (
	dateLayout   = "02/01/2006"
	cancelWindow = 24 * time.Hour
)

// Service contains booking lifecycle logic. Status transitions that touch
// room inventory run inside a database transaction.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func newBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// nightsBetween charges at least one night even for same-day stays.
func nightsBetween(checkIn, checkOut time.Time) int {
	days := checkOut.Sub(checkIn).Hours() / 24
	n := int(math.Ceil(days))
	if n < 1 {
		n = 1
	}
	return n
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	rooms := repository.NewRoomRepository(s.db)
	if _, err := rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	rate, err := rooms.GetEffectivePrice(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	nights := nightsBetween(checkIn, checkOut)
	b := &domain.Booking{
		BookingCode: newBookingCode(),
		UserID:      userID,
		RoomID:      req.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		NightlyRate: rate,
		TotalAmount: float64(nights) * rate,
		Status:      domain.BookingPending,
	}

	if err := repository.NewBookingRepository(s.db).Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64) ([]repository.UserBookingRow, error) {
	return repository.NewBookingRepository(s.db).ListByUser(ctx, userID)
}

// Detail returns the joined booking view. Guests can only read their own
// bookings; staff roles can read any.
func (s *Service) Detail(ctx context.Context, id, actorID int64, actorRole string) (*repository.BookingDetailRow, error) {
	bookings := repository.NewBookingRepository(s.db)

	if actorRole == string(domain.RoleGuest) {
		if _, err := bookings.GetByIDForUser(ctx, id, actorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
	}

	row, err := bookings.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

// Cancel releases the room and marks the booking cancelled. Only pending and
// confirmed bookings qualify, and only within 24 hours of being placed.
func (s *Service) Cancel(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := repository.NewBookingRepository(tx)

		b, err := bookings.GetByIDForUser(ctx, id, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if _, lookupErr := bookings.GetByID(ctx, id); lookupErr == nil {
					return ErrForbidden
				}
				return ErrNotFound
			}
			return err
		}

		if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
			return ErrNotCancellable
		}
		if s.now().Sub(b.CreatedAt) > cancelWindow {
			return ErrCancelWindow
		}

		if err := bookings.UpdateStatus(ctx, id, domain.BookingCancelled); err != nil {
			return err
		}
		if err := repository.NewRoomRepository(tx).UpdateStatus(ctx, b.RoomID, domain.RoomAvailable); err != nil {
			return err
		}

		b.Status = domain.BookingCancelled
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus is the staff transition endpoint. Room status follows the
// booking status where the transition implies one.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	newStatus := domain.BookingStatus(status)
	switch newStatus {
	case domain.BookingConfirmed, domain.BookingCancelled,
		domain.BookingCheckedIn, domain.BookingCheckedOut, domain.BookingCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	var out *domain.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bookings := repository.NewBookingRepository(tx)

		b, err := bookings.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := bookings.UpdateStatus(ctx, id, newStatus); err != nil {
			return err
		}

		if roomStatus, ok := domain.RoomStatusFor(newStatus); ok {
			if err := repository.NewRoomRepository(tx).UpdateStatus(ctx, b.RoomID, roomStatus); err != nil {
				return err
			}
		}

		b.Status = newStatus
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]repository.BookingDetailRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return repository.NewBookingRepository(s.db).List(ctx, status, limit, offset)
}

func (s *Service) CountAll(ctx context.Context) (int64, error) {
	return repository.NewBookingRepository(s.db).CountAll(ctx)
}

func (s *Service) CountByMonth(ctx context.Context, month, year int) (int64, error) {
	if month < 1 || month > 12 || year < 2000 {
		return 0, ErrValidation
	}
	return repository.NewBookingRepository(s.db).CountByMonth(ctx, month, year)
}

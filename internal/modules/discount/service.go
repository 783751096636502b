package discount

import (
	"context"
	"errors"
	"strings"
	"time"

	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Repository interface {
	Create(ctx context.Context, d *domain.Discount) error
	GetByID(ctx context.Context, id int64) (*domain.Discount, error)
	GetActiveByCode(ctx context.Context, code string, now time.Time) (*domain.Discount, error)
	List(ctx context.Context, status string) ([]domain.Discount, error)
	Update(ctx context.Context, d *domain.Discount) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	discounts Repository
}

func NewService(discounts Repository) *Service {
	return &Service{discounts: discounts}
}

func parseWindow(fromStr, untilStr string) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	until, err := time.Parse(dateLayout, untilStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	// valid_until covers the whole last day
	until = until.AddDate(0, 0, 1).Add(-time.Second)
	if until.Before(from) {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return from, until, nil
}

func (s *Service) Create(ctx context.Context, req CreateDiscountRequest) (*domain.Discount, error) {
	from, until, err := parseWindow(req.ValidFrom, req.ValidUntil)
	if err != nil {
		return nil, err
	}

	d := &domain.Discount{
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		DiscountType: domain.DiscountType(req.DiscountType),
		Value:        req.Value,
		UsageLimit:   req.UsageLimit,
		ValidFrom:    from,
		ValidUntil:   until,
		Status:       domain.DiscountActive,
	}
	if d.Code == "" || d.Name == "" {
		return nil, ErrValidation
	}
	if d.DiscountType == domain.DiscountPercent && d.Value > 100 {
		return nil, ErrValidation
	}

	if err := s.discounts.Create(ctx, d); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrCodeExists
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, status string) ([]domain.Discount, error) {
	return s.discounts.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Discount, error) {
	d, err := s.discounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Validate checks a code the way the payment path will, so the storefront
// can preview the discounted amount.
func (s *Service) Validate(ctx context.Context, code string, amount float64) (*domain.Discount, float64, error) {
	d, err := s.discounts.GetActiveByCode(ctx, strings.ToUpper(strings.TrimSpace(code)), time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	if d.UsageUsed >= d.UsageLimit {
		return nil, 0, ErrNotFound
	}
	return d, d.Apply(amount), nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateDiscountRequest) (*domain.Discount, error) {
	from, until, err := parseWindow(req.ValidFrom, req.ValidUntil)
	if err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Description = req.Description
	current.Value = req.Value
	current.UsageLimit = req.UsageLimit
	current.ValidFrom = from
	current.ValidUntil = until
	current.Status = domain.DiscountStatus(req.Status)

	if current.DiscountType == domain.DiscountPercent && current.Value > 100 {
		return nil, ErrValidation
	}

	if err := s.discounts.Update(ctx, current); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.discounts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

package stats

import (
	"context"
	"errors"
	"time"

	"resort-backend/internal/repository"
)

var ErrValidation = errors.New("validation error")

const dateLayout = "2006-01-02"

// Service exposes the admin revenue and usage dashboards on top of
// StatsRepository aggregates.
type Service struct {
	stats    *repository.StatsRepository
	bookings *repository.BookingRepository
}

func NewService(stats *repository.StatsRepository, bookings *repository.BookingRepository) *Service {
	return &Service{stats: stats, bookings: bookings}
}

type RevenueReport struct {
	Totals   *repository.RevenueTotals      `json:"totals"`
	Bookings int64                          `json:"bookings"`
	ByMethod []repository.MethodStatsRow    `json:"by_method"`
	ByType   []repository.RoomTypeRevenueRow `json:"by_room_type"`
}

// Revenue builds the overview report, optionally bounded by start/end dates
// in YYYY-MM-DD form (end date inclusive).
func (s *Service) Revenue(ctx context.Context, startStr, endStr string) (*RevenueReport, error) {
	var from, to time.Time
	if startStr != "" {
		t, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return nil, ErrValidation
		}
		from = t
	}
	if endStr != "" {
		t, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return nil, ErrValidation
		}
		to = t.AddDate(0, 0, 1)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, ErrValidation
	}

	totals, err := s.stats.RevenueTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	byMethod, err := s.stats.PaymentStatsByMethod(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.stats.RevenueByRoomType(ctx)
	if err != nil {
		return nil, err
	}

	return &RevenueReport{
		Totals:   totals,
		Bookings: bookings,
		ByMethod: byMethod,
		ByType:   byType,
	}, nil
}

func (s *Service) MonthlyRevenue(ctx context.Context, year int) ([]repository.MonthlyRevenueRow, error) {
	if year < 2000 || year > 2200 {
		return nil, ErrValidation
	}
	return s.stats.MonthlyRevenue(ctx, year)
}

func (s *Service) TopRooms(ctx context.Context, limit int) ([]repository.TopRoomRow, error) {
	return s.stats.TopBookedRooms(ctx, limit)
}

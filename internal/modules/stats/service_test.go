package stats

import (
	"context"
	"testing"
	"time"

	"resort-backend/internal/database"
	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seed(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x", FullName: "Alice", Role: domain.RoleGuest, IsActive: true}
	require.NoError(t, db.Create(user).Error)

	resort := &domain.Resort{Name: "Coral Bay"}
	require.NoError(t, db.Create(resort).Error)
	deluxe := &domain.RoomType{Name: "Deluxe", PricePerNight: 100}
	require.NoError(t, db.Create(deluxe).Error)
	suite := &domain.RoomType{Name: "Suite", PricePerNight: 300}
	require.NoError(t, db.Create(suite).Error)

	room1 := &domain.Room{ResortID: resort.ID, RoomTypeID: deluxe.ID, Location: "A-101", Status: domain.RoomAvailable}
	require.NoError(t, db.Create(room1).Error)
	room2 := &domain.Room{ResortID: resort.ID, RoomTypeID: suite.ID, Location: "B-201", Status: domain.RoomAvailable}
	require.NoError(t, db.Create(room2).Error)

	ctx := context.Background()
	bookings := repository.NewBookingRepository(db)
	payments := repository.NewPaymentRepository(db)

	mkPaid := func(code string, roomID int64, amount float64, method string, txDate time.Time) {
		b := &domain.Booking{
			BookingCode: "BK-" + code, UserID: user.ID, RoomID: roomID,
			CheckIn: txDate, CheckOut: txDate.AddDate(0, 0, 2),
			NightlyRate: amount / 2, TotalAmount: amount,
			Status: domain.BookingConfirmed,
		}
		require.NoError(t, bookings.Create(ctx, b))

		p := &domain.Payment{
			TransactionCode: "PAY-" + code, BookingID: b.ID, UserID: user.ID,
			PaymentMethod: domain.PaymentMethod(method), Amount: amount,
			Status: domain.PaymentPending, TransactionDate: txDate,
		}
		require.NoError(t, payments.Create(ctx, p))
		require.NoError(t, payments.MarkCompleted(ctx, p.ID, txDate))
	}

	mkPaid("0001", room1.ID, 200, "card", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	mkPaid("0002", room1.ID, 200, "cash", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	mkPaid("0003", room2.ID, 600, "card", time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC))

	return NewService(repository.NewStatsRepository(db), bookings), db
}

func TestRevenue_Totals(t *testing.T) {
	svc, _ := seed(t)

	report, err := svc.Revenue(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.Totals.TotalRevenue)
	assert.Equal(t, 0.0, report.Totals.TotalRefunded)
	assert.Equal(t, 1000.0, report.Totals.NetRevenue)
	assert.Equal(t, int64(3), report.Totals.PaymentCount)
	assert.Equal(t, int64(3), report.Bookings)
}

func TestRevenue_DateFilter(t *testing.T) {
	svc, _ := seed(t)

	report, err := svc.Revenue(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, 400.0, report.Totals.TotalRevenue)
	assert.Equal(t, int64(2), report.Totals.PaymentCount)
}

func TestRevenue_RefundReducesNet(t *testing.T) {
	svc, db := seed(t)
	ctx := context.Background()

	payments := repository.NewPaymentRepository(db)
	p, err := payments.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, payments.MarkRefunded(ctx, p.ID, 150, "partial", time.Now()))

	report, err := svc.Revenue(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, report.Totals.TotalRevenue)
	assert.Equal(t, 150.0, report.Totals.TotalRefunded)
	assert.Equal(t, 850.0, report.Totals.NetRevenue)
}

func TestMonthlyRevenue(t *testing.T) {
	svc, _ := seed(t)

	rows, err := svc.MonthlyRevenue(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 3, rows[0].Month)
	assert.Equal(t, 400.0, rows[0].Revenue)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, 5, rows[1].Month)
	assert.Equal(t, 600.0, rows[1].Revenue)
}

func TestRevenue_ByMethodAndType(t *testing.T) {
	svc, _ := seed(t)

	report, err := svc.Revenue(context.Background(), "", "")
	require.NoError(t, err)

	require.Len(t, report.ByMethod, 2)
	assert.Equal(t, "card", report.ByMethod[0].PaymentMethod)
	assert.Equal(t, 800.0, report.ByMethod[0].Total)

	require.Len(t, report.ByType, 2)
	assert.Equal(t, "Suite", report.ByType[0].RoomTypeName)
	assert.Equal(t, 600.0, report.ByType[0].Revenue)
}

func TestTopRooms(t *testing.T) {
	svc, _ := seed(t)

	rows, err := svc.TopRooms(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A-101", rows[0].Location)
	assert.Equal(t, int64(2), rows[0].Bookings)
}

func TestRevenue_BadDates(t *testing.T) {
	svc, _ := seed(t)
	_, err := svc.Revenue(context.Background(), "03/01/2026", "")
	assert.ErrorIs(t, err, ErrValidation)
}

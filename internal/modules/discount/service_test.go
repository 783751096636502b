package discount

import (
	"context"
	"testing"

	"resort-backend/internal/database"
	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(repository.NewDiscountRepository(db))
}

func TestCreate_UppercasesCode(t *testing.T) {
	svc := newService(t)
	d, err := svc.Create(context.Background(), CreateDiscountRequest{
		Code:         "summer10",
		Name:         "Summer Sale",
		DiscountType: "percent",
		Value:        10,
		UsageLimit:   100,
		ValidFrom:    "2026-06-01",
		ValidUntil:   "2026-08-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", d.Code)
	assert.Equal(t, domain.DiscountActive, d.Status)
}

func TestCreate_DuplicateCode(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	req := CreateDiscountRequest{
		Code: "TWICE", Name: "Twice", DiscountType: "fixed", Value: 5,
		UsageLimit: 10, ValidFrom: "2026-01-01", ValidUntil: "2026-12-31",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrCodeExists)
}

func TestCreate_PercentOver100(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), CreateDiscountRequest{
		Code: "BAD", Name: "Bad", DiscountType: "percent", Value: 150,
		UsageLimit: 10, ValidFrom: "2026-01-01", ValidUntil: "2026-12-31",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreate_WindowInverted(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), CreateDiscountRequest{
		Code: "BAD", Name: "Bad", DiscountType: "percent", Value: 10,
		UsageLimit: 10, ValidFrom: "2026-12-31", ValidUntil: "2026-01-01",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidate_PreviewsAmount(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	_, err := svc.Create(ctx, CreateDiscountRequest{
		Code: "TEN", Name: "Ten", DiscountType: "percent", Value: 10,
		UsageLimit: 10, ValidFrom: "2020-01-01", ValidUntil: "2099-12-31",
	})
	require.NoError(t, err)

	d, discounted, err := svc.Validate(ctx, "ten", 200)
	require.NoError(t, err)
	assert.Equal(t, "TEN", d.Code)
	assert.Equal(t, 180.0, discounted)
}

func TestValidate_InactiveCode(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, CreateDiscountRequest{
		Code: "OFF", Name: "Off", DiscountType: "percent", Value: 10,
		UsageLimit: 10, ValidFrom: "2020-01-01", ValidUntil: "2099-12-31",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, UpdateDiscountRequest{
		Name: "Off", Value: 10, UsageLimit: 10,
		ValidFrom: "2020-01-01", ValidUntil: "2099-12-31",
		Status: "inactive",
	})
	require.NoError(t, err)

	_, _, err = svc.Validate(ctx, "OFF", 200)
	assert.ErrorIs(t, err, ErrNotFound)
}

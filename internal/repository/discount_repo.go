package repository

import (
	"context"
	"time"

	"resort-backend/internal/domain"

	"gorm.io/gorm"
)

type DiscountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

type discountModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Code         string    `gorm:"column:code"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description"`
	DiscountType string    `gorm:"column:discount_type"`
	Value        float64   `gorm:"column:value"`
	UsageLimit   int       `gorm:"column:usage_limit"`
	UsageUsed    int       `gorm:"column:usage_used"`
	ValidFrom    time.Time `gorm:"column:valid_from"`
	ValidUntil   time.Time `gorm:"column:valid_until"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (discountModel) TableName() string { return "discounts" }

func toDomainDiscount(m discountModel) *domain.Discount {
	return &domain.Discount{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		Description:  m.Description,
		DiscountType: domain.DiscountType(m.DiscountType),
		Value:        m.Value,
		UsageLimit:   m.UsageLimit,
		UsageUsed:    m.UsageUsed,
		ValidFrom:    m.ValidFrom,
		ValidUntil:   m.ValidUntil,
		Status:       domain.DiscountStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDiscountModel(d *domain.Discount) discountModel {
	return discountModel{
		ID:           d.ID,
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		DiscountType: string(d.DiscountType),
		Value:        d.Value,
		UsageLimit:   d.UsageLimit,
		UsageUsed:    d.UsageUsed,
		ValidFrom:    d.ValidFrom,
		ValidUntil:   d.ValidUntil,
		Status:       string(d.Status),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, d *domain.Discount) error {
	m := toDiscountModel(d)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDiscount(m)
	return nil
}

func (r *DiscountRepository) GetByID(ctx context.Context, id int64) (*domain.Discount, error) {
	var m discountModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDiscount(m), nil
}

// GetActiveByCode returns the discount only when it is active and the given
// time falls inside its validity window.
func (r *DiscountRepository) GetActiveByCode(ctx context.Context, code string, now time.Time) (*domain.Discount, error) {
	var m discountModel
	tx := r.db.WithContext(ctx).
		Where("code = ? AND status = ? AND valid_from <= ? AND valid_until >= ?",
			code, string(domain.DiscountActive), now, now).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDiscount(m), nil
}

// IncrementUsage bumps usage_used, guarded so it can never pass usage_limit.
// Returns gorm.ErrRecordNotFound when the limit is already reached.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&discountModel{}).
		Where("id = ? AND usage_used < usage_limit", id).
		Update("usage_used", gorm.Expr("usage_used + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DiscountRepository) List(ctx context.Context, status string) ([]domain.Discount, error) {
	var ms []discountModel
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Discount, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainDiscount(m))
	}
	return out, nil
}

func (r *DiscountRepository) Update(ctx context.Context, d *domain.Discount) error {
	m := toDiscountModel(d)
	m.UpdatedAt = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&discountModel{ID: d.ID}).Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&discountModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package domain

import "time"

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

type DiscountStatus string

const (
	DiscountActive   DiscountStatus = "active"
	DiscountInactive DiscountStatus = "inactive"
)

type Discount struct {
	ID           int64          `json:"id"`
	Code         string         `json:"code" validate:"required" gorm:"uniqueIndex;size:64"`
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	DiscountType DiscountType   `json:"discount_type" validate:"required"`
	Value        float64        `json:"value" validate:"gt=0"`
	UsageLimit   int            `json:"usage_limit"`
	UsageUsed    int            `json:"usage_used"`
	ValidFrom    time.Time      `json:"valid_from"`
	ValidUntil   time.Time      `json:"valid_until"`
	Status       DiscountStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Apply returns the discounted amount. Percent discounts take value as a
// percentage off, fixed discounts subtract value with a floor of zero.
func (d *Discount) Apply(amount float64) float64 {
	switch d.DiscountType {
	case DiscountPercent:
		return amount - amount*d.Value/100
	case DiscountFixed:
		if amount-d.Value < 0 {
			return 0
		}
		return amount - d.Value
	}
	return amount
}

package discount

type CreateDiscountRequest struct {
	Code         string  `json:"code" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	DiscountType string  `json:"discount_type" binding:"required,oneof=percent fixed"`
	Value        float64 `json:"value" binding:"required,gt=0"`
	UsageLimit   int     `json:"usage_limit" binding:"required,gt=0"`
	ValidFrom    string  `json:"valid_from" binding:"required"`
	ValidUntil   string  `json:"valid_until" binding:"required"`
}

type UpdateDiscountRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Value       float64 `json:"value" binding:"required,gt=0"`
	UsageLimit  int     `json:"usage_limit" binding:"required,gt=0"`
	ValidFrom   string  `json:"valid_from" binding:"required"`
	ValidUntil  string  `json:"valid_until" binding:"required"`
	Status      string  `json:"status" binding:"required,oneof=active inactive"`
}

package domain

import "time"

type Resort struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

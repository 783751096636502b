package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
	RoleGuest   UserRole = "guest"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required" gorm:"uniqueIndex;size:64"`
	Email        string    `json:"email" validate:"required,email" gorm:"uniqueIndex;size:255"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

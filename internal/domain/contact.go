package domain

import "time"

type ContactStatus string

const (
	ContactNew     ContactStatus = "new"
	ContactRead    ContactStatus = "read"
	ContactReplied ContactStatus = "replied"
)

type Contact struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Email     string        `json:"email" validate:"required,email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Message   string        `json:"message" validate:"required" gorm:"type:text"`
	Status    ContactStatus `json:"status"`
	Reply     string        `json:"reply,omitempty" gorm:"type:text"`
	RepliedAt *time.Time    `json:"replied_at,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

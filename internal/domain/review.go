package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id" validate:"required"`
	UserID    *int64    `json:"user_id,omitempty"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"required" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewReply struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"review_id"`
	Reply     string    `json:"reply" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

package domain

import (
	"time"

	"gorm.io/datatypes"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomReserved    RoomStatus = "reserved"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type RoomType struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required"`
	PricePerNight float64   `json:"price_per_night" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Room struct {
	ID         int64      `json:"id"`
	ResortID   int64      `json:"resort_id" validate:"required"`
	RoomTypeID int64      `json:"room_type_id" validate:"required"`
	Location   string     `json:"location" validate:"required"`
	Address    string     `json:"address,omitempty"`
	Status     RoomStatus `json:"status"`
	Category   string     `json:"category,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RoomDetail is the 1:1 extension of Room. PricePerNight overrides the room
// type default when set.
type RoomDetail struct {
	ID            int64          `json:"id"`
	RoomID        int64          `json:"room_id"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	Features      datatypes.JSON `json:"features,omitempty"`
	Images        datatypes.JSON `json:"images,omitempty"`
	NumBed        string         `json:"num_bed,omitempty"`
	PricePerNight *float64       `json:"price_per_night,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

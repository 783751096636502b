package catalog

import "gorm.io/datatypes"

type CreateResortRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateRoomTypeRequest struct {
	Name          string  `json:"name" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

type RoomDetailPayload struct {
	Description   string         `json:"description"`
	Features      datatypes.JSON `json:"features"`
	Images        datatypes.JSON `json:"images"`
	NumBed        string         `json:"num_bed"`
	PricePerNight *float64       `json:"price_per_night" binding:"omitempty,gt=0"`
}

type CreateRoomRequest struct {
	ResortID   int64              `json:"resort_id" binding:"required"`
	RoomTypeID int64              `json:"room_type_id" binding:"required"`
	Location   string             `json:"location" binding:"required"`
	Address    string             `json:"address"`
	Category   string             `json:"category"`
	Detail     *RoomDetailPayload `json:"detail"`
}

type UpdateRoomRequest struct {
	ResortID   int64              `json:"resort_id" binding:"required"`
	RoomTypeID int64              `json:"room_type_id" binding:"required"`
	Location   string             `json:"location" binding:"required"`
	Address    string             `json:"address"`
	Status     string             `json:"status" binding:"omitempty,oneof=available reserved occupied maintenance"`
	Category   string             `json:"category"`
	Detail     *RoomDetailPayload `json:"detail"`
}

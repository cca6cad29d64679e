package handler

import (
	"time"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

type createRoomTypeRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=60"`
	Description string  `json:"description" validate:"max=500"`
	Capacity    int     `json:"capacity"    validate:"required,gt=0"`
	BasePrice   float64 `json:"base_price"  validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"required,len=3"`
}

type roomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	BasePrice   float64 `json:"base_price"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"created_at"`
}

type createRoomRequest struct {
	Number     string `json:"number"       validate:"required,min=1,max=10"`
	RoomTypeID string `json:"room_type_id" validate:"required"`
	Floor      int    `json:"floor"`
	Notes      string `json:"notes"        validate:"max=500"`
}

// updateRoomRequest is a partial update; absent fields are left unchanged.
type updateRoomRequest struct {
	Number     *string `json:"number,omitempty"       validate:"omitempty,min=1,max=10"`
	RoomTypeID *string `json:"room_type_id,omitempty"`
	Floor      *int    `json:"floor,omitempty"`
	Status     *string `json:"status,omitempty"       validate:"omitempty,oneof=available occupied maintenance"`
	Notes      *string `json:"notes,omitempty"        validate:"omitempty,max=500"`
}

type roomResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	RoomTypeID string `json:"room_type_id"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func toRoomTypeResponse(rt *domain.RoomType) roomTypeResponse {
	return roomTypeResponse{
		ID:          rt.ID,
		Name:        rt.Name,
		Description: rt.Description,
		Capacity:    rt.Capacity,
		BasePrice:   rt.BasePrice,
		Currency:    rt.Currency,
		CreatedAt:   rt.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:         room.ID,
		Number:     room.Number,
		RoomTypeID: room.RoomTypeID,
		Floor:      room.Floor,
		Status:     string(room.Status),
		Notes:      room.Notes,
		CreatedAt:  room.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  room.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

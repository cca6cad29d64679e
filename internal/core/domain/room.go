package domain

import (
	"errors"
	"time"
)

// RoomStatus represents the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomExists = errors.New("room already exists")
var ErrRoomTypeNotFound = errors.New("room type not found")
var ErrRoomTypeExists = errors.New("room type already exists")
var ErrInvalidRoomStatus = errors.New("invalid room status")

// ValidStatus reports whether s is a known room status.
func (s RoomStatus) ValidStatus() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// RoomType describes a category of rooms offered by the property.
type RoomType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	BasePrice   float64   `json:"base_price"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Room is a single physical room belonging to a room type.
type Room struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	RoomTypeID string     `json:"room_type_id"`
	Floor      int        `json:"floor"`
	Status     RoomStatus `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

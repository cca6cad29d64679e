package ports

import (
	"context"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

// CreateRoomTypeInput carries the data needed to create a room category.
type CreateRoomTypeInput struct {
	Name        string
	Description string
	Capacity    int
	BasePrice   float64
	Currency    string
}

// CreateRoomInput carries the data needed to create a room.
type CreateRoomInput struct {
	Number     string
	RoomTypeID string
	Floor      int
	Notes      string
}

// UpdateRoomInput is a partial update; nil fields are left unchanged.
type UpdateRoomInput struct {
	Number     *string
	RoomTypeID *string
	Floor      *int
	Status     *string
	Notes      *string
}

// RoomService defines use-case operations for the room inventory.
type RoomService interface {
	CreateRoomType(ctx context.Context, input CreateRoomTypeInput) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, id string, input UpdateRoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

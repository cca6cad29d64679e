package ports

import (
	"context"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

// RoomTypeRepository persists room categories. Create must enforce name
// uniqueness in the store.
type RoomTypeRepository interface {
	Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error)
	FindByID(ctx context.Context, id string) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
}

// RoomRepository persists rooms. Create must enforce room number uniqueness
// in the store.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Room, error)
}

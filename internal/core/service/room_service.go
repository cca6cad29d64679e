package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hostaly/rooms-api/internal/core/domain"
	"github.com/hostaly/rooms-api/internal/core/ports"
)

// RoomService implements the room inventory use cases.
type RoomService struct {
	types  ports.RoomTypeRepository
	rooms  ports.RoomRepository
	audit  ports.AuditTrail
	logger zerolog.Logger
}

func NewRoomService(types ports.RoomTypeRepository, rooms ports.RoomRepository, audit ports.AuditTrail, logger zerolog.Logger) *RoomService {
	return &RoomService{types: types, rooms: rooms, audit: audit, logger: logger}
}

func (s *RoomService) CreateRoomType(ctx context.Context, input ports.CreateRoomTypeInput) (*domain.RoomType, error) {
	now := time.Now().UTC()
	rt := &domain.RoomType{
		Name:        input.Name,
		Description: input.Description,
		Capacity:    input.Capacity,
		BasePrice:   input.BasePrice,
		Currency:    input.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.types.Create(ctx, rt)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_type", created.Name).Msg("room type created")
	s.record(ctx, ports.AuditRoomTypeNew, created.Name)
	return created, nil
}

func (s *RoomService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.types.List(ctx)
}

// CreateRoom creates a room after checking the referenced room type exists.
// New rooms start in the available state.
func (s *RoomService) CreateRoom(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	if _, err := s.types.FindByID(ctx, input.RoomTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		Number:     input.Number,
		RoomTypeID: input.RoomTypeID,
		Floor:      input.Floor,
		Status:     domain.RoomAvailable,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.rooms.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("room", created.Number).Msg("room created")
	s.record(ctx, ports.AuditRoomCreated, created.Number)
	return created, nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

// UpdateRoom applies a partial update to an existing room. Only non-nil
// fields change; a status must be one of the known values and a changed
// room type must reference an existing type.
func (s *RoomService) UpdateRoom(ctx context.Context, id string, input ports.UpdateRoomInput) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		room.Number = *input.Number
	}
	if input.Floor != nil {
		room.Floor = *input.Floor
	}
	if input.Notes != nil {
		room.Notes = *input.Notes
	}
	if input.Status != nil {
		status := domain.RoomStatus(*input.Status)
		if !status.ValidStatus() {
			return nil, domain.ErrInvalidRoomStatus
		}
		room.Status = status
	}
	if input.RoomTypeID != nil && *input.RoomTypeID != room.RoomTypeID {
		if _, err := s.types.FindByID(ctx, *input.RoomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = *input.RoomTypeID
	}
	room.UpdatedAt = time.Now().UTC()

	updated, err := s.rooms.Update(ctx, room)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("room_id", id).Msg("room updated")
	s.record(ctx, ports.AuditRoomUpdated, updated.Number)
	return updated, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.rooms.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("room_id", id).Msg("room deleted")
	s.record(ctx, ports.AuditRoomDeleted, room.Number)
	return nil
}

func (s *RoomService) record(ctx context.Context, action, subject string) {
	if s.audit == nil {
		return
	}
	actor, _ := ctx.Value(actorKey{}).(string)
	s.audit.Enqueue(ports.AuditEvent{
		Actor:     actor,
		Action:    action,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
	})
}

type actorKey struct{}

// WithActor returns a context carrying the acting username for audit records.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

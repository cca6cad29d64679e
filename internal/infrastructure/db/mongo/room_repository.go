package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hostaly/rooms-api/internal/core/domain"
)

const roomsCollection = "rooms"

type MongoRoomRepository struct {
	coll *mongo.Collection
}

// NewRoomRepository wires the rooms collection and ensures the unique index
// on room number.
func NewRoomRepository(ctx context.Context, db *mongo.Database) (*MongoRoomRepository, error) {
	coll := db.Collection(roomsCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure room number index: %w", err)
	}

	return &MongoRoomRepository{coll: coll}, nil
}

type mongoRoom struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Number     string             `bson:"number"`
	RoomTypeID string             `bson:"room_type_id"`
	Floor      int                `bson:"floor"`
	Status     string             `bson:"status"`
	Notes      string             `bson:"notes,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (m mongoRoom) toDomain() domain.Room {
	return domain.Room{
		ID:         m.ID.Hex(),
		Number:     m.Number,
		RoomTypeID: m.RoomTypeID,
		Floor:      m.Floor,
		Status:     domain.RoomStatus(m.Status),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromDomain(room *domain.Room) mongoRoom {
	return mongoRoom{
		Number:     room.Number,
		RoomTypeID: room.RoomTypeID,
		Floor:      room.Floor,
		Status:     string(room.Status),
		Notes:      room.Notes,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

func (r *MongoRoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	res, err := r.coll.InsertOne(ctx, fromDomain(room))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoRoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	var m mongoRoom
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}

	room := m.toDomain()
	return &room, nil
}

func (r *MongoRoomRepository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	doc := fromDomain(room)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (r *MongoRoomRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *MongoRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Room
	for cur.Next(ctx) {
		var m mongoRoom
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode room: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

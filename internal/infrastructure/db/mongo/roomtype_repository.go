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

const roomTypesCollection = "room_types"

type MongoRoomTypeRepository struct {
	coll *mongo.Collection
}

// NewRoomTypeRepository wires the room_types collection and ensures the
// unique index on name.
func NewRoomTypeRepository(ctx context.Context, db *mongo.Database) (*MongoRoomTypeRepository, error) {
	coll := db.Collection(roomTypesCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure room type name index: %w", err)
	}

	return &MongoRoomTypeRepository{coll: coll}, nil
}

type mongoRoomType struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Capacity    int                `bson:"capacity"`
	BasePrice   float64            `bson:"base_price"`
	Currency    string             `bson:"currency"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m mongoRoomType) toDomain() domain.RoomType {
	return domain.RoomType{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Description: m.Description,
		Capacity:    m.Capacity,
		BasePrice:   m.BasePrice,
		Currency:    m.Currency,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MongoRoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	doc := mongoRoomType{
		Name:        rt.Name,
		Description: rt.Description,
		Capacity:    rt.Capacity,
		BasePrice:   rt.BasePrice,
		Currency:    rt.Currency,
		CreatedAt:   rt.CreatedAt,
		UpdatedAt:   rt.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoomTypeExists
		}
		return nil, fmt.Errorf("insert room type: %w", err)
	}

	created := *rt
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoRoomTypeRepository) FindByID(ctx context.Context, id string) (*domain.RoomType, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomTypeNotFound
	}

	var m mongoRoomType
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type: %w", err)
	}

	rt := m.toDomain()
	return &rt, nil
}

func (r *MongoRoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.RoomType
	for cur.Next(ctx) {
		var m mongoRoomType
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode room type: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

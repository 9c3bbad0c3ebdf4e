package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fintrack/finance-system/internal/core/domain"
)

const placesCollection = "places"

// PlaceRepository persists planned places.
type PlaceRepository struct {
	coll *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) *PlaceRepository {
	return &PlaceRepository{coll: db.Collection(placesCollection)}
}

type placeDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description,omitempty"`
	EstimatedCost float64            `bson:"estimated_cost"`
	UserID        string             `bson:"user_id"`
	CreatedAt     int64              `bson:"created_at"`
}

func (d placeDoc) toDomain() domain.Place {
	return domain.Place{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Description:   d.Description,
		EstimatedCost: d.EstimatedCost,
		UserID:        d.UserID,
		CreatedAt:     unixToTime(d.CreatedAt),
	}
}

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := placeDoc{
		Name:          place.Name,
		Description:   place.Description,
		EstimatedCost: place.EstimatedCost,
		UserID:        place.UserID,
		CreatedAt:     place.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert place: %w", err)
	}

	created := *place
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PlaceRepository) FindByUser(ctx context.Context, userID string) ([]domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find places: %w", err)
	}
	defer cursor.Close(ctx)

	var places []domain.Place
	for cursor.Next(ctx) {
		var doc placeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode place: %w", err)
		}
		places = append(places, doc.toDomain())
	}
	return places, cursor.Err()
}

func (r *PlaceRepository) FindByID(ctx context.Context, id string) (*domain.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlaceNotFound
	}

	var doc placeDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	place := doc.toDomain()
	return &place, nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlaceNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every query.
func (r *PlaceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

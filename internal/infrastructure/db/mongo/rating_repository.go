package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

const collectionRatings = "rating"

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{col: db.Collection(collectionRatings)}
}

type mongoRating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ListingID string             `bson:"listing_id"`
	Score     float64            `bson:"rating"`
	Review    string             `bson:"review"`
	UserEmail string             `bson:"user_email"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mr mongoRating) toDomain() domain.Rating {
	return domain.Rating{
		ID:        mr.ID.Hex(),
		ListingID: mr.ListingID,
		Score:     mr.Score,
		Review:    mr.Review,
		UserEmail: mr.UserEmail,
		CreatedAt: mr.CreatedAt,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRating{
		ListingID: rating.ListingID,
		Score:     rating.Score,
		Review:    rating.Review,
		UserEmail: rating.UserEmail,
		CreatedAt: rating.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}

	created := *rating
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RatingRepository) ListByListing(ctx context.Context, listingID string) ([]domain.Rating, error) {
	return r.find(ctx, bson.M{"listing_id": listingID})
}

func (r *RatingRepository) List(ctx context.Context) ([]domain.Rating, error) {
	return r.find(ctx, bson.M{})
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M) ([]domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer cur.Close(ctx)

	var ratings []domain.Rating
	for cur.Next(ctx) {
		var mr mongoRating
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode rating: %w", err)
		}
		ratings = append(ratings, mr.toDomain())
	}
	return ratings, cur.Err()
}

// CountPerDay groups ratings by calendar day for the admin chart.
func (r *RatingRepository) CountPerDay(ctx context.Context) ([]ports.CountPerDay, error) {
	return countPerDay(ctx, r.col)
}

// EnsureIndexes creates the listing lookup index on the rating collection.
func (r *RatingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "listing_id", Value: 1}},
	})
	return err
}

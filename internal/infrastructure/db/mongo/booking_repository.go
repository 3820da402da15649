package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

const collectionBookings = "booking"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type mongoBooking struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ListingID    string             `bson:"listing_id"`
	ListingTitle string             `bson:"listing_title"`
	From         time.Time          `bson:"from"`
	To           time.Time          `bson:"to"`
	NumGuests    int                `bson:"num_guests"`
	Subtotal     float64            `bson:"subtotal"`
	UserEmail    string             `bson:"user_email"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (mb mongoBooking) toDomain() domain.Booking {
	return domain.Booking{
		ID:           mb.ID.Hex(),
		ListingID:    mb.ListingID,
		ListingTitle: mb.ListingTitle,
		From:         mb.From,
		To:           mb.To,
		NumGuests:    mb.NumGuests,
		Subtotal:     mb.Subtotal,
		UserEmail:    mb.UserEmail,
		CreatedAt:    mb.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBooking{
		ListingID:    booking.ListingID,
		ListingTitle: booking.ListingTitle,
		From:         booking.From,
		To:           booking.To,
		NumGuests:    booking.NumGuests,
		Subtotal:     booking.Subtotal,
		UserEmail:    booking.UserEmail,
		CreatedAt:    booking.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *booking
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepository) ListByEmail(ctx context.Context, email string) ([]domain.Booking, error) {
	return r.find(ctx, bson.M{"user_email": email})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []domain.Booking
	for cur.Next(ctx) {
		var mb mongoBooking
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, mb.toDomain())
	}
	return bookings, cur.Err()
}

// CountPerDay groups bookings by calendar day for the admin chart.
func (r *BookingRepository) CountPerDay(ctx context.Context) ([]ports.CountPerDay, error) {
	return countPerDay(ctx, r.col)
}

// EnsureIndexes creates the lookup indexes on the booking collection.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_email", Value: 1}}},
		{Keys: bson.D{{Key: "listing_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// countPerDay is the shared day-bucketing aggregation for bookings and
// ratings.
func countPerDay(ctx context.Context, col *mongo.Collection) ([]ports.CountPerDay, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$created_at"},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate per day: %w", err)
	}
	defer cur.Close(ctx)

	type row struct {
		Date  string `bson:"_id"`
		Count int    `bson:"count"`
	}

	var out []ports.CountPerDay
	for cur.Next(ctx) {
		var rw row
		if err := cur.Decode(&rw); err != nil {
			return nil, fmt.Errorf("decode aggregate row: %w", err)
		}
		out = append(out, ports.CountPerDay{Date: rw.Date, Count: rw.Count})
	}
	return out, cur.Err()
}

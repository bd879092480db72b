package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"medicare/database"
	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	claimColl   *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo(store *database.Store) *MongoBookingRepo {
	return &MongoBookingRepo{
		bookingColl: store.Collection(database.BookingsCollection),
		claimColl:   store.Collection(database.ClaimsCollection),
	}
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Reservation{}
	for cursor.Next(ctx) {
		var booking models.Reservation
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// FindByDate retrieves all bookings for a given appointment date.
func (repo *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return repo.find(ctx, bson.M{"appointmentDate": date})
}

// FindByEmail retrieves all bookings made by one requester.
func (repo *MongoBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	return repo.find(ctx, bson.M{"email": email})
}

func (repo *MongoBookingRepo) ExistsForRequester(ctx context.Context, serviceName, date, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	filter := bson.M{
		"appointmentDate": date,
		"serviceName":     serviceName,
		"email":           email,
	}
	n, err := repo.bookingColl.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error counting bookings for %s on %s: %w", email, date, err)
	}
	return n > 0, nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	var booking models.Reservation
	err = repo.bookingColl.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	if _, err := repo.bookingColl.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// MarkPaid flips the paid flag and records the provider transaction.
func (repo *MongoBookingRepo) MarkPaid(ctx context.Context, id, transactionID string) (*models.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": transactionID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Reservation
	err = repo.bookingColl.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error marking booking %s paid: %w", id, err)
	}
	return &booking, nil
}

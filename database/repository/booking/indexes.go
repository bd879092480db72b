package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the query indexes on the bookings collection. None of
// them is unique: the one-booking-per-requester rule is enforced at admission
// time, and slot uniqueness lives in the claims collection's _id.
func (repo *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Availability reads all bookings of one date.
		{
			Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "serviceName", Value: 1}},
			Options: options.Index().SetName("date_service_idx"),
		},
		// Admission duplicate check.
		{
			Keys:    bson.D{{Key: "serviceName", Value: 1}, {Key: "appointmentDate", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetName("service_date_email_idx"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_idx"),
		},
	}

	if _, err := repo.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

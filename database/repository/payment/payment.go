package paymentRepo

import (
	"context"
	"fmt"

	"medicare/database"
	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository is the append-only payment log.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
}

type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(store *database.Store) *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: store.Collection(database.PaymentsCollection)}
}

// Insert appends payment, assigning an id when it has none.
func (r *MongoPaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to log payment for booking %s: %w", payment.BookingID, err)
	}
	return nil
}

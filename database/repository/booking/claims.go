package bookingRepo

import (
	"context"
	"fmt"

	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClaimSlot relies on the uniqueness of _id: the insert either creates the
// claim or fails with a duplicate key error, in one store round-trip.
func (repo *MongoBookingRepo) ClaimSlot(ctx context.Context, claim *models.SlotClaim) error {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	_, err := repo.claimColl.InsertOne(ctx, claim)
	if mongo.IsDuplicateKeyError(err) {
		return ErrSlotClaimed
	}
	if err != nil {
		return fmt.Errorf("error claiming slot %s: %w", claim.Key, err)
	}
	return nil
}

func (repo *MongoBookingRepo) ReleaseSlot(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	if _, err := repo.claimColl.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("error releasing slot %s: %w", key, err)
	}
	return nil
}

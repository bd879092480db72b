package catalogRepo

import (
	"context"
	"fmt"

	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoCatalogRepo) Create(ctx context.Context, template *models.ServiceTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	if template.ID.IsZero() {
		template.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, template)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to create service template %q: %w", template.Name, err)
	}
	return nil
}

// SetPriceAll overwrites the price of every template.
func (r *mongoCatalogRepo) SetPriceAll(ctx context.Context, price float64) (*models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"price": price}})
	if err != nil {
		return nil, fmt.Errorf("failed to update template prices: %w", err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

package catalogRepo

import (
	"context"
	"fmt"

	"medicare/models"
	"medicare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCatalogRepo) ListTemplates(ctx context.Context) ([]models.ServiceTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service templates: %w", err)
	}
	defer cursor.Close(ctx)

	templates := []models.ServiceTemplate{}
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode service templates: %w", err)
	}
	return templates, nil
}

func (r *mongoCatalogRepo) ListNames(ctx context.Context) ([]models.ServiceName, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service names: %w", err)
	}
	defer cursor.Close(ctx)

	names := []models.ServiceName{}
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode service names: %w", err)
	}
	return names, nil
}

func (r *mongoCatalogRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, utils.StoreTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count service templates: %w", err)
	}
	return n, nil
}

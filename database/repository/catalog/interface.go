// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"
	"errors"

	"medicare/database"
	"medicare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateName is returned when a template with the same name exists.
var ErrDuplicateName = errors.New("service template name already exists")

type CatalogRepository interface {
	// ListTemplates returns every template in insertion order.
	ListTemplates(ctx context.Context) ([]models.ServiceTemplate, error)
	ListNames(ctx context.Context) ([]models.ServiceName, error)
	Create(ctx context.Context, template *models.ServiceTemplate) error
	SetPriceAll(ctx context.Context, price float64) (*models.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo(store *database.Store) CatalogRepository {
	return &mongoCatalogRepo{
		coll: store.Collection(database.SlotsCollection),
	}
}

// Package catalog manages the service templates slots are derived from.
package catalog

import (
	"context"
	"errors"

	catalogRepo "medicare/database/repository/catalog"
	"medicare/models"
	"medicare/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListNames(ctx context.Context) ([]models.ServiceName, error)
	// SetPriceAll overwrites the price of every template with the configured
	// default.
	SetPriceAll(ctx context.Context) (*models.UpdateResult, error)
	CreateTemplate(ctx context.Context, template models.ServiceTemplate) (*models.InsertResult, error)
}

type DefaultCatalogService struct {
	Repo         catalogRepo.CatalogRepository
	DefaultPrice float64
	Logger       *zap.Logger

	validate *validator.Validate
}

func NewCatalogService(repo catalogRepo.CatalogRepository, defaultPrice float64, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:         repo,
		DefaultPrice: defaultPrice,
		Logger:       logger,
		validate:     validator.New(),
	}
}

func (s *DefaultCatalogService) ListNames(ctx context.Context) ([]models.ServiceName, error) {
	names, err := s.Repo.ListNames(ctx)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to load service names", err)
	}
	if names == nil {
		names = []models.ServiceName{}
	}
	return names, nil
}

func (s *DefaultCatalogService) SetPriceAll(ctx context.Context) (*models.UpdateResult, error) {
	res, err := s.Repo.SetPriceAll(ctx, s.DefaultPrice)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to update prices", err)
	}
	s.Logger.Info("template prices reset",
		zap.Float64("price", s.DefaultPrice),
		zap.Int64("modified", res.ModifiedCount),
	)
	return res, nil
}

// CreateTemplate adds a bookable service. Names are unique.
func (s *DefaultCatalogService) CreateTemplate(ctx context.Context, template models.ServiceTemplate) (*models.InsertResult, error) {
	if err := s.validate.Struct(template); err != nil {
		return nil, utils.WrapError(utils.KindBadRequest, "invalid service template: "+err.Error(), err)
	}

	if err := s.Repo.Create(ctx, &template); err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateName) {
			return nil, utils.NewError(utils.KindBadRequest, "a service named "+template.Name+" already exists")
		}
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to create service template", err)
	}
	s.Logger.Info("service template created", zap.String("name", template.Name), zap.Int("slots", len(template.Slots)))
	return &models.InsertResult{Acknowledged: true, InsertedID: template.ID}, nil
}

package user

import (
	"context"

	"medicare/models"
	"medicare/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Upsert stores user unless its email is already registered. The role is
// never taken from the request.
func (s *DefaultUserService) Upsert(ctx context.Context, user models.User) (*models.InsertResult, error) {
	user.Role = ""
	if err := validate.Struct(user); err != nil {
		return nil, utils.WrapError(utils.KindBadRequest, "invalid user: "+err.Error(), err)
	}

	id, err := s.Repo.UpsertByEmail(ctx, &user)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to save user", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// List retrieves all users.
func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to fetch users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

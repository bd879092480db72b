package user

import (
	"context"

	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

// IsAdmin reports whether email holds the admin role. Unknown emails are not
// admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (*models.AdminStatus, error) {
	role, err := s.RoleOf(ctx, email)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to look up user", err)
	}
	return &models.AdminStatus{IsAdmin: role == utils.RoleAdmin}, nil
}

// PromoteToAdmin grants the admin role to the user with id. A missing record is
// created holding only the role.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) (*models.UpdateResult, error) {
	res, err := s.Repo.SetRole(ctx, id, utils.RoleAdmin)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to promote user", err)
	}
	s.Logger.Info("user promoted to admin", zap.String("userId", id))
	return res, nil
}

// RoleOf implements access.RoleResolver.
func (s *DefaultUserService) RoleOf(ctx context.Context, email string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

package user

import (
	"context"

	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

// IssueToken signs a bearer token for a registered email. Unknown emails are
// refused.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (*models.TokenResponse, error) {
	if email == "" {
		return nil, utils.NewError(utils.KindBadRequest, "email is required")
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.WrapError(utils.KindTransientStorage, "failed to look up user", err)
	}
	if user == nil {
		s.Logger.Info("token refused for unknown email", zap.String("email", email))
		return nil, utils.NewError(utils.KindForbidden, "forbidden access")
	}

	token, err := s.Tokens.GenerateToken(user.Email)
	if err != nil {
		return nil, utils.WrapError(utils.KindInternal, "failed to sign token", err)
	}
	return &models.TokenResponse{AccessToken: token}, nil
}

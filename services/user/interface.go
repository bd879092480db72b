package user

import (
	"context"

	userRepo "medicare/database/repository/user"
	"medicare/models"
	"medicare/utils"

	"go.uber.org/zap"
)

type UserService interface {
	// Authentication
	IssueToken(ctx context.Context, email string) (*models.TokenResponse, error)

	// User Management
	Upsert(ctx context.Context, user models.User) (*models.InsertResult, error)
	List(ctx context.Context) ([]models.User, error)

	// Admin
	IsAdmin(ctx context.Context, email string) (*models.AdminStatus, error)
	PromoteToAdmin(ctx context.Context, id string) (*models.UpdateResult, error)
	RoleOf(ctx context.Context, email string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens *utils.TokenManager
	Logger *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenManager, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Tokens: tokens, Logger: logger}
}

package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"medicare/models"
	"medicare/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) UpsertByEmail(ctx context.Context, user *models.User) (interface{}, error) {
	args := m.Called(ctx, user)
	return args.Get(0), args.Error(1)
}

func (m *mockUserRepo) SetRole(ctx context.Context, id, role string) (*models.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	res, _ := args.Get(0).(*models.UpdateResult)
	return res, args.Error(1)
}

func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newService(repo *mockUserRepo) (*DefaultUserService, *utils.TokenManager) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	return NewUserService(repo, tokens, zap.NewNop()), tokens
}

func TestIssueToken(t *testing.T) {
	ctx := context.Background()

	t.Run("registered email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "a@x.com").Return(&models.User{Email: "a@x.com"}, nil)
		svc, tokens := newService(repo)

		resp, err := svc.IssueToken(ctx, "a@x.com")
		require.NoError(t, err)
		email, err := tokens.ExtractEmail(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", email)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email is forbidden", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, nil)
		svc, _ := newService(repo)

		_, err := svc.IssueToken(ctx, "nobody@x.com")
		assert.True(t, utils.IsKind(err, utils.KindForbidden))
	})

	t.Run("store failure is transient", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("GetByEmail", ctx, "a@x.com").Return(nil, errors.New("timeout"))
		svc, _ := newService(repo)

		_, err := svc.IssueToken(ctx, "a@x.com")
		assert.True(t, utils.IsKind(err, utils.KindTransientStorage))
	})
}

func TestUpsertNeverTakesRoleFromRequest(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	id := primitive.NewObjectID()
	repo.On("UpsertByEmail", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "a@x.com" && u.Role == ""
	})).Return(id, nil)
	svc, _ := newService(repo)

	res, err := svc.Upsert(ctx, models.User{Name: "A", Email: "a@x.com", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, id, res.InsertedID)
	repo.AssertExpectations(t)
}

func TestUpsertValidatesEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _ := newService(repo)

	_, err := svc.Upsert(context.Background(), models.User{Name: "A", Email: "nope"})
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))
	repo.AssertNotCalled(t, "UpsertByEmail", mock.Anything, mock.Anything)
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("GetByEmail", ctx, "root@x.com").Return(&models.User{Email: "root@x.com", Role: utils.RoleAdmin}, nil)
	repo.On("GetByEmail", ctx, "a@x.com").Return(&models.User{Email: "a@x.com"}, nil)
	repo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, nil)
	svc, _ := newService(repo)

	for email, want := range map[string]bool{"root@x.com": true, "a@x.com": false, "nobody@x.com": false} {
		status, err := svc.IsAdmin(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, want, status.IsAdmin, email)
	}
}

func TestPromoteToAdmin(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	repo.On("SetRole", ctx, "64b000000000000000000001", utils.RoleAdmin).
		Return(&models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	svc, _ := newService(repo)

	res, err := svc.PromoteToAdmin(ctx, "64b000000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	repo.AssertExpectations(t)
}

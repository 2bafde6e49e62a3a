//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lateProfileStore reports the first profile lookup as missing although the
// row exists, as seen by a request that loses a first-visit race.
type lateProfileStore struct {
	users.Store
	infos *lateUserInfoRepository
}

func (s *lateProfileStore) UserInfos() users.UserInfoRepository {
	return s.infos
}

type lateUserInfoRepository struct {
	users.UserInfoRepository
	lookups int
}

func (r *lateUserInfoRepository) GetByUserID(ctx context.Context, userID string) (*users.UserInfo, error) {
	r.lookups++
	if r.lookups == 1 {
		return nil, users.ErrNotFound
	}
	return r.UserInfoRepository.GetByUserID(ctx, userID)
}

func testRegistration(username string) *users.Registration {
	return &users.Registration{
		Account: users.AccountParameters{Username: username, Email: username + "@example.org", Password: "correct horse"},
		Profile: users.ProfileParameters{FirstName: "Ada", Institution: "Caltech"},
	}
}

func TestAccountService_RegisterCreatesUserAndProfile(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	user, info, err := services.AccountService.Register(context.Background(), testRegistration("seismo42"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, info.UserID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	assert.Equal(t, int64(1), countRows(t, services, &models.UserModel{}))
	assert.Equal(t, int64(1), countRows(t, services, &models.UserInfoModel{}))
}

func TestAccountService_RegisterDuplicate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, _, err := services.AccountService.Register(context.Background(), testRegistration("seismo42"))
	require.NoError(t, err)

	_, _, err = services.AccountService.Register(context.Background(), testRegistration("seismo42"))
	var validationErr *forms.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{MsgDuplicateAccount}, validationErr.Errors["user__username"])
	assert.Equal(t, int64(1), countRows(t, services, &models.UserInfoModel{}))
}

func TestAccountService_Authenticate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, _, err := services.AccountService.Register(context.Background(), testRegistration("seismo42"))
	require.NoError(t, err)

	token, err := services.AccountService.Authenticate(context.Background(), "seismo42", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = services.AccountService.Authenticate(context.Background(), "seismo42", "wrong")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	_, err = services.AccountService.Authenticate(context.Background(), "nobody", "correct horse")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestAccountService_ProfileCreatedOnFirstAccess(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	info, err := services.AccountService.Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, info.UserID)

	again, err := services.AccountService.Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, again.ID)

	updated, err := services.AccountService.UpdateProfile(context.Background(), userID, &users.ProfileParameters{City: "Pasadena"})
	require.NoError(t, err)
	assert.Equal(t, info.ID, updated.ID)
	assert.Equal(t, "Pasadena", updated.City)
	assert.Equal(t, int64(1), countRows(t, services, &models.UserInfoModel{}))
}

func TestAccountService_ProfileCreatedConcurrently(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	userID := uuid.NewString()

	existing, err := services.AccountService.Profile(context.Background(), userID)
	require.NoError(t, err)

	store := services.DBContext.UserStore
	late := &lateProfileStore{Store: store, infos: &lateUserInfoRepository{UserInfoRepository: store.UserInfos()}}
	accountService, err := NewAccountService(late, nil, nil, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	info, err := accountService.Profile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, info.ID)
	assert.Equal(t, 2, late.infos.lookups)
	assert.Equal(t, int64(1), countRows(t, services, &models.UserInfoModel{}))
}

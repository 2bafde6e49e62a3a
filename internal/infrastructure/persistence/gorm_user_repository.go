package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.DateTimeCreated.IsZero() {
		user.DateTimeCreated = time.Now().UTC()
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.UserModel{}
	record.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create user %s: %w", user.Username, users.ErrDuplicateAccount)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("created user", "user_id", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return r.first(ctx, "id = ?", userID)
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *gormUserRepository) first(ctx context.Context, cond string, arg string) (*users.User, error) {
	var record models.UserModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", arg, users.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return record.ToDomain(), nil
}

type gormUserInfoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserInfoRepository creates a new GORM-based UserInfoRepository implementation
func NewGormUserInfoRepository(db *gorm.DB, logger logger.Logger) (users.UserInfoRepository, error) {
	return &gormUserInfoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserInfoRepository) Create(ctx context.Context, info *users.UserInfo) error {
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	if err := info.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.UserInfoModel{}
	record.FromDomain(info)

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create user info for user %s: %w", info.UserID, users.ErrDuplicateProfile)
		}
		return fmt.Errorf("failed to create user info: %w", err)
	}

	r.logger.Info("created user info", "user_info_id", info.ID, "user_id", info.UserID)
	return nil
}

func (r *gormUserInfoRepository) GetByUserID(ctx context.Context, userID string) (*users.UserInfo, error) {
	var record models.UserInfoModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user info for user %s: %w", userID, users.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	return record.ToDomain(), nil
}

func (r *gormUserInfoRepository) UpdateByID(ctx context.Context, info *users.UserInfo) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	record := &models.UserInfoModel{}
	record.FromDomain(info)

	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update user info: %w", err)
	}

	r.logger.Info("updated user info", "user_info_id", info.ID)
	return nil
}

type gormUserStore struct {
	db        *gorm.DB
	logger    logger.Logger
	users     users.UserRepository
	userInfos users.UserInfoRepository
}

// NewGormUserStore creates a users.Store whose repositories share db
func NewGormUserStore(db *gorm.DB, logger logger.Logger) (users.Store, error) {
	userRepo, err := NewGormUserRepository(db, logger)
	if err != nil {
		return nil, err
	}
	userInfoRepo, err := NewGormUserInfoRepository(db, logger)
	if err != nil {
		return nil, err
	}
	return &gormUserStore{db: db, logger: logger, users: userRepo, userInfos: userInfoRepo}, nil
}

func (s *gormUserStore) Users() users.UserRepository {
	return s.users
}

func (s *gormUserStore) UserInfos() users.UserInfoRepository {
	return s.userInfos
}

func (s *gormUserStore) WithinTransaction(ctx context.Context, fn func(tx users.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore, err := NewGormUserStore(tx, s.logger)
		if err != nil {
			return err
		}
		return fn(txStore)
	})
}

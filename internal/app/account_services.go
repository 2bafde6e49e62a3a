package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/logger"
)

// MsgDuplicateAccount is reported against the username when registration collides
const MsgDuplicateAccount = "A user with that username or email already exists."

// accountService implements the AccountService interface
type accountService struct {
	store  users.Store
	hasher users.PasswordHasher
	tokens users.SessionTokens
	logger logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(store users.Store, hasher users.PasswordHasher, tokens users.SessionTokens, logger logger.Logger) (users.AccountService, error) {
	return &accountService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}, nil
}

// Register saves the User, then its UserInfo, inside one transaction
func (s *accountService) Register(ctx context.Context, registration *users.Registration) (*users.User, *users.UserInfo, error) {
	if errs := registration.Validate(); errs.Any() {
		return nil, nil, forms.NewValidationError(errs)
	}

	hash, err := s.hasher.Hash(registration.Account.Password)
	if err != nil {
		return nil, nil, err
	}

	var user *users.User
	var info *users.UserInfo
	err = s.store.WithinTransaction(ctx, func(tx users.Store) error {
		user = &users.User{
			Username:     registration.Account.Username,
			Email:        registration.Account.Email,
			PasswordHash: hash,
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}

		info = &users.UserInfo{UserID: user.ID, ProfileParameters: registration.Profile}
		return tx.UserInfos().Create(ctx, info)
	})
	if errors.Is(err, users.ErrDuplicateAccount) {
		errs := forms.Errors{}
		errs.Add(forms.Key(users.AccountPrefix, "username"), MsgDuplicateAccount)
		return nil, nil, forms.NewValidationError(errs)
	}
	if err != nil {
		s.logger.Error("registration failed", "username", registration.Account.Username, "error", err)
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "user_info_id", info.ID)
	return user, info, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.Users().GetByUsername(ctx, username)
	if errors.Is(err, users.ErrNotFound) {
		return "", users.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

// Profile returns the profile of userID, creating an empty one on first access
func (s *accountService) Profile(ctx context.Context, userID string) (*users.UserInfo, error) {
	info, err := s.store.UserInfos().GetByUserID(ctx, userID)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	info = &users.UserInfo{UserID: userID}
	err = s.store.UserInfos().Create(ctx, info)
	if errors.Is(err, users.ErrDuplicateProfile) {
		// a concurrent first visit created it
		return s.store.UserInfos().GetByUserID(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return info, nil
}

func (s *accountService) UpdateProfile(ctx context.Context, userID string, profile *users.ProfileParameters) (*users.UserInfo, error) {
	if errs := users.ValidateProfile(profile); errs.Any() {
		return nil, forms.NewValidationError(errs)
	}

	info, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	info.ProfileParameters = *profile
	if err := s.store.UserInfos().UpdateByID(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", userID)
	return info, nil
}

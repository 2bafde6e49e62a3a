package users

import (
	"context"
)

// UserRepository defines persistence of accounts
type UserRepository interface {
	// Create assigns an ID when empty; a taken username or email wraps ErrDuplicateAccount
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// UserInfoRepository defines persistence of profiles
type UserInfoRepository interface {
	// Create wraps ErrDuplicateProfile when the account already has a profile
	Create(ctx context.Context, info *UserInfo) error
	// GetByUserID wraps ErrNotFound when the account has no profile yet
	GetByUserID(ctx context.Context, userID string) (*UserInfo, error)
	UpdateByID(ctx context.Context, info *UserInfo) error
}

// Store groups the account repositories for transactional registration
type Store interface {
	Users() UserRepository
	UserInfos() UserInfoRepository
	WithinTransaction(ctx context.Context, fn func(tx Store) error) error
}

// PasswordHasher hashes and checks passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrInvalidCredentials when password does not match hash
	Compare(hash, password string) error
}

// SessionTokens issues and verifies session tokens carrying a user ID
type SessionTokens interface {
	Issue(userID string) (string, error)
	// Verify returns the user ID of a valid, unexpired token
	Verify(token string) (string, error)
}

// AccountService registers, authenticates and maintains profiles
type AccountService interface {
	// Register saves the User, then its UserInfo. Field failures are returned as *forms.ValidationError.
	Register(ctx context.Context, registration *Registration) (*User, *UserInfo, error)

	// Authenticate returns a session token, wrapping ErrInvalidCredentials on mismatch
	Authenticate(ctx context.Context, username, password string) (string, error)

	// Profile returns the profile of userID, creating an empty one when missing
	Profile(ctx context.Context, userID string) (*UserInfo, error)

	// UpdateProfile creates or updates the profile of userID
	UpdateProfile(ctx context.Context, userID string, profile *ProfileParameters) (*UserInfo, error)
}

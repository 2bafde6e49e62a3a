package users

import (
	"errors"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
)

var (
	// ErrNotFound is returned when an account or profile does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when a username and password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateAccount is returned when the username or email is taken
	ErrDuplicateAccount = errors.New("username or email already registered")
	// ErrDuplicateProfile is returned when the account already has a profile
	ErrDuplicateProfile = errors.New("profile already exists")
)

// AccountParameters are the user-entered fields of an account
type AccountParameters struct {
	Username string `mapstructure:"username" json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `mapstructure:"email" json:"email" validate:"required,email,max=254"`
	Password string `mapstructure:"password" json:"-" validate:"required,min=8,max=72"`
}

// User entity
type User struct {
	ID              string    `json:"id" validate:"required,uuid4"`
	Username        string    `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email           string    `json:"email" validate:"required,email"`
	PasswordHash    string    `json:"-" validate:"required"`
	DateTimeCreated time.Time `json:"date_time_created" validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	return validators.Summarize(validate.Struct(u))
}

package users

import (
	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
)

// ProfileParameters are the user-entered fields of a profile
type ProfileParameters struct {
	FirstName   string `mapstructure:"first_name" json:"first_name" validate:"max=30"`
	LastName    string `mapstructure:"last_name" json:"last_name" validate:"max=30"`
	Institution string `mapstructure:"institution" json:"institution" validate:"max=100"`
	Address     string `mapstructure:"address" json:"address" validate:"max=100"`
	City        string `mapstructure:"city" json:"city" validate:"max=100"`
	State       string `mapstructure:"state" json:"state" validate:"max=100"`
	PostalCode  string `mapstructure:"postal_code" json:"postal_code" validate:"max=20"`
	Country     string `mapstructure:"country" json:"country" validate:"max=100"`
	Phone       string `mapstructure:"phone" json:"phone" validate:"max=30"`
}

// UserInfo entity, the profile attached 1:1 to a User
type UserInfo struct {
	ID     string `json:"id" validate:"required,uuid4"`
	UserID string `json:"user_id" validate:"required,uuid4"`
	ProfileParameters
}

// Validate for validating UserInfo struct
func (i *UserInfo) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	return validators.Summarize(validate.Struct(i))
}

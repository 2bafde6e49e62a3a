package users

import (
	"fmt"

	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
)

// Field name prefixes of the registration form
const (
	AccountPrefix = "user__"
	ProfilePrefix = ""
)

// RegistrationNamespace splits a registration form into account and profile parts
var RegistrationNamespace = forms.Namespace{
	Prefixes: []string{AccountPrefix, ProfilePrefix},
	Excluded: []string{"user", "user__id"},
}

// Registration is one decoded registration form
type Registration struct {
	Account AccountParameters
	Profile ProfileParameters
}

// Validate checks both parts and returns the failures keyed by prefixed field name
func (r *Registration) Validate() forms.Errors {
	errs := validateParameters(AccountPrefix, &r.Account)
	errs.Merge(validateParameters(ProfilePrefix, &r.Profile))
	return errs
}

// ValidateProfile checks a profile submitted on its own
func ValidateProfile(profile *ProfileParameters) forms.Errors {
	return validateParameters(ProfilePrefix, profile)
}

// ProfileValues flattens a profile into form values
func ProfileValues(profile ProfileParameters) (map[string]string, error) {
	values, err := forms.Flatten(ProfilePrefix, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten profile: %w", err)
	}
	return values, nil
}

func validateParameters(prefix string, params interface{}) forms.Errors {
	validate, err := validators.New()
	if err != nil {
		errs := forms.Errors{}
		errs.Add("", err.Error())
		return errs
	}
	return validators.ToFormErrors(validate.Struct(params)).Prefixed(prefix)
}

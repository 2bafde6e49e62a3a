package simulations

import (
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

var nchunksRule = validators.Rule{
	Tag:    "nchunks",
	Func:   validators.DependentChoice("Type", allowedNChunks),
	Choice: true,
}

func newValidator() (*validator.Validate, error) {
	return validators.New(nchunksRule)
}

// validateEntity checks a persisted record, returning a summarized error
func validateEntity(entity interface{}) error {
	validate, err := newValidator()
	if err != nil {
		return err
	}
	return validators.Summarize(validate.Struct(entity))
}

// validateParameters checks user-entered fields, returning per-field errors
// namespaced by prefix.
func validateParameters(prefix string, params interface{}) forms.Errors {
	validate, err := newValidator()
	if err != nil {
		errs := forms.Errors{}
		errs.Add("", err.Error())
		return errs
	}
	return validators.ToFormErrors(validate.Struct(params), nchunksRule).Prefixed(prefix)
}

package seismo

import (
	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
)

// Station is a seismic receiver
type Station struct {
	ID        string  `json:"id" validate:"required,uuid4"`
	Code      string  `json:"code" validate:"required,alphanum,max=32"`
	Network   string  `json:"network" validate:"required,alphanum,max=8"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	// Elevation and BurialDepth are in metres.
	Elevation   float64 `json:"elevation"`
	BurialDepth float64 `json:"burial_depth" validate:"gte=0"`
}

// Validate for validating Station struct
func (s *Station) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	return validators.Summarize(validate.Struct(s))
}

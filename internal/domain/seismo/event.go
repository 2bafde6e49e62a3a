package seismo

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
)

// Event is a centroid moment tensor earthquake source
type Event struct {
	ID                   string    `json:"id" validate:"required,uuid4"`
	Name                 string    `json:"name" validate:"required,max=64"`
	Region               string    `json:"region" validate:"max=128"`
	OriginTime           time.Time `json:"origin_time" validate:"required"`
	TimeShift            float64   `json:"time_shift"`
	HalfDuration         float64   `json:"half_duration" validate:"gte=0"`
	Latitude             float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude            float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Depth                float64   `json:"depth" validate:"gte=0,lte=6371"`
	BodyWaveMagnitude    float64   `json:"body_wave_magnitude" validate:"gte=0,lte=10"`
	SurfaceWaveMagnitude float64   `json:"surface_wave_magnitude" validate:"gte=0,lte=10"`
	// Moment tensor components in dyne-cm.
	Mrr float64 `json:"mrr"`
	Mtt float64 `json:"mtt"`
	Mpp float64 `json:"mpp"`
	Mrt float64 `json:"mrt"`
	Mrp float64 `json:"mrp"`
	Mtp float64 `json:"mtp"`
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	return validators.Summarize(validate.Struct(e))
}

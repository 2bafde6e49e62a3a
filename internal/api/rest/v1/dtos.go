package v1

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every failed JSON request
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// InfoResponse carries a plain informational message
type InfoResponse struct {
	Message *string `json:"message,omitempty"`
}

func newErrorResponse(format string, args ...interface{}) ErrorResponse {
	message := fmt.Sprintf(format, args...)
	return ErrorResponse{Message: &message}
}

// SimulationResponse is a simulation with its mesh and model parameters inlined
type SimulationResponse struct {
	ID                  string                           `json:"id"`
	UserID              string                           `json:"user_id"`
	DateTimeCreated     time.Time                        `json:"date_time_created"`
	MeshID              string                           `json:"mesh_id"`
	ModelID             string                           `json:"model_id"`
	AbsorbingConditions bool                             `json:"absorbing_conditions"`
	Parameters          simulations.SimulationParameters `json:"parameters"`
	Mesh                *simulations.MeshParameters      `json:"mesh,omitempty"`
	Model               *simulations.ModelParameters     `json:"model,omitempty"`
	Events              []*seismo.Event                  `json:"events"`
	Stations            []*seismo.Station                `json:"stations"`
}

func newSimulationResponse(sim *simulations.Simulation) SimulationResponse {
	response := SimulationResponse{
		ID:                  sim.ID,
		UserID:              sim.UserID,
		DateTimeCreated:     sim.DateTimeCreated,
		MeshID:              sim.MeshID,
		ModelID:             sim.ModelID,
		AbsorbingConditions: sim.AbsorbingConditions,
		Parameters:          sim.SimulationParameters,
		Events:              []*seismo.Event{},
		Stations:            []*seismo.Station{},
	}
	if sim.Mesh != nil {
		response.Mesh = &sim.Mesh.MeshParameters
	}
	if sim.Model != nil {
		response.Model = &sim.Model.ModelParameters
	}
	if sim.Events != nil {
		response.Events = sim.Events
	}
	if sim.Stations != nil {
		response.Stations = sim.Stations
	}
	return response
}

// IndexResponse lists previous simulations next to the form starting a new one
type IndexResponse struct {
	Simulations []SimulationResponse           `json:"simulations"`
	Form        *simulations.TypeSelectionForm `json:"form"`
}

// ProfileFormResponse is the registration or profile form, echoed on failure
type ProfileFormResponse struct {
	Values map[string]string `json:"values"`
	Errors forms.Errors      `json:"errors,omitempty"`
}

// AttachRequest names catalogue entries to link to a simulation
type AttachRequest struct {
	IDs []string `form:"id" json:"ids" validate:"required,min=1,dive,uuid4"`
}

// Validate checks that every ID is well formed
func (r *AttachRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// EventRequest describes a catalogue event to create
type EventRequest struct {
	Name                 string    `form:"name" json:"name" validate:"required,max=64"`
	Region               string    `form:"region" json:"region" validate:"max=128"`
	OriginTime           time.Time `form:"origin_time" json:"origin_time" time_format:"2006-01-02T15:04:05Z07:00" validate:"required"`
	TimeShift            float64   `form:"time_shift" json:"time_shift"`
	HalfDuration         float64   `form:"half_duration" json:"half_duration"`
	Latitude             float64   `form:"latitude" json:"latitude"`
	Longitude            float64   `form:"longitude" json:"longitude"`
	Depth                float64   `form:"depth" json:"depth"`
	BodyWaveMagnitude    float64   `form:"body_wave_magnitude" json:"body_wave_magnitude"`
	SurfaceWaveMagnitude float64   `form:"surface_wave_magnitude" json:"surface_wave_magnitude"`
	Mrr                  float64   `form:"mrr" json:"mrr"`
	Mtt                  float64   `form:"mtt" json:"mtt"`
	Mpp                  float64   `form:"mpp" json:"mpp"`
	Mrt                  float64   `form:"mrt" json:"mrt"`
	Mrp                  float64   `form:"mrp" json:"mrp"`
	Mtp                  float64   `form:"mtp" json:"mtp"`
}

// Validate checks the fields a client must supply; ranges are checked by the entity
func (r *EventRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ToEvent converts the request into an unsaved event
func (r *EventRequest) ToEvent() *seismo.Event {
	return &seismo.Event{
		Name:                 r.Name,
		Region:               r.Region,
		OriginTime:           r.OriginTime,
		TimeShift:            r.TimeShift,
		HalfDuration:         r.HalfDuration,
		Latitude:             r.Latitude,
		Longitude:            r.Longitude,
		Depth:                r.Depth,
		BodyWaveMagnitude:    r.BodyWaveMagnitude,
		SurfaceWaveMagnitude: r.SurfaceWaveMagnitude,
		Mrr:                  r.Mrr,
		Mtt:                  r.Mtt,
		Mpp:                  r.Mpp,
		Mrt:                  r.Mrt,
		Mrp:                  r.Mrp,
		Mtp:                  r.Mtp,
	}
}

// StationRequest describes a catalogue station to create
type StationRequest struct {
	Code        string  `form:"code" json:"code" validate:"required,alphanum,max=32"`
	Network     string  `form:"network" json:"network" validate:"required,alphanum,max=8"`
	Latitude    float64 `form:"latitude" json:"latitude"`
	Longitude   float64 `form:"longitude" json:"longitude"`
	Elevation   float64 `form:"elevation" json:"elevation"`
	BurialDepth float64 `form:"burial_depth" json:"burial_depth"`
}

// Validate checks the fields a client must supply; ranges are checked by the entity
func (r *StationRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ToStation converts the request into an unsaved station
func (r *StationRequest) ToStation() *seismo.Station {
	return &seismo.Station{
		Code:        r.Code,
		Network:     r.Network,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Elevation:   r.Elevation,
		BurialDepth: r.BurialDepth,
	}
}

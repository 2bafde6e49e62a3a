package simulations

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
)

// SimulationParameters are the user-entered fields of a simulation
type SimulationParameters struct {
	Name                       string         `mapstructure:"name" json:"name" validate:"required,max=100"`
	SimulationType             SimulationType `mapstructure:"simulation_type" json:"simulation_type" validate:"required,oneof=1 2 3"`
	RecordLength               float64        `mapstructure:"record_length" json:"record_length" validate:"gt=0,lte=10000"`
	ReceiversCanBeBuried       bool           `mapstructure:"receivers_can_be_buried" json:"receivers_can_be_buried"`
	PrintSourceTimeFunction    bool           `mapstructure:"print_source_time_function" json:"print_source_time_function"`
	SaveForward                bool           `mapstructure:"save_forward" json:"save_forward"`
	MovieSurface               bool           `mapstructure:"movie_surface" json:"movie_surface"`
	MovieVolume                bool           `mapstructure:"movie_volume" json:"movie_volume"`
	NTStepBetweenFrames        int            `mapstructure:"ntstep_between_frames" json:"ntstep_between_frames" validate:"gte=0"`
	HDurMovie                  float64        `mapstructure:"hdur_movie" json:"hdur_movie" validate:"gte=0"`
	OutputFormat               string         `mapstructure:"output_format" json:"output_format" validate:"required,oneof=ascii sac_alphanum sac_binary"`
	NTStepBetweenOutputSeismos int            `mapstructure:"ntstep_between_output_seismos" json:"ntstep_between_output_seismos" validate:"required,min=1"`
}

// MsgMovieFrames is reported when a movie is requested without a frame interval
const MsgMovieFrames = "Movies need a positive number of time steps between frames."

// checkMovie applies the rule spanning several movie fields
func (p *SimulationParameters) checkMovie() forms.Errors {
	errs := forms.Errors{}
	if (p.MovieSurface || p.MovieVolume) && p.NTStepBetweenFrames <= 0 {
		errs.Add("ntstep_between_frames", MsgMovieFrames)
	}
	return errs
}

// Simulation entity. MeshID and ModelID reference rows saved before it.
type Simulation struct {
	ID                  string    `json:"id" validate:"required,uuid4"`
	UserID              string    `json:"user_id" validate:"required,uuid4"`
	MeshID              string    `json:"mesh_id" validate:"required,uuid4"`
	ModelID             string    `json:"model_id" validate:"required,uuid4"`
	DateTimeCreated     time.Time `json:"date_time_created" validate:"required"`
	AbsorbingConditions bool      `json:"absorbing_conditions"`
	SimulationParameters

	// Resolved by GetByID; never written through the simulation row.
	Mesh     *Mesh             `json:"mesh,omitempty" validate:"-"`
	Model    *Model            `json:"model,omitempty" validate:"-"`
	Events   []*seismo.Event   `json:"events,omitempty" validate:"-"`
	Stations []*seismo.Station `json:"stations,omitempty" validate:"-"`
}

// Validate for validating Simulation struct
func (s *Simulation) Validate() error {
	return validateEntity(s)
}

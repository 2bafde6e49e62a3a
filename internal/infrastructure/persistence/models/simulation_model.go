package models

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
)

// SimulationModel is the GORM database model for simulations. MeshID and
// ModelID are plain indexed columns without a foreign-key constraint, since
// the mesh and model rows are deleted before the simulation row.
type SimulationModel struct {
	ID                         string    `gorm:"primaryKey;type:uuid"`
	UserID                     string    `gorm:"not null;index;type:varchar(255)"`
	MeshID                     string    `gorm:"not null;index;type:uuid"`
	ModelID                    string    `gorm:"not null;index;type:uuid"`
	DateTimeCreated            time.Time `gorm:"not null"`
	Name                       string    `gorm:"not null;type:varchar(100)"`
	SimulationType             int       `gorm:"not null"`
	AbsorbingConditions        bool
	RecordLength               float64
	ReceiversCanBeBuried       bool
	PrintSourceTimeFunction    bool
	SaveForward                bool
	MovieSurface               bool
	MovieVolume                bool
	NTStepBetweenFrames        int     `gorm:"column:ntstep_between_frames"`
	HDurMovie                  float64 `gorm:"column:hdur_movie"`
	OutputFormat               string  `gorm:"not null;type:varchar(20)"`
	NTStepBetweenOutputSeismos int     `gorm:"column:ntstep_between_output_seismos"`

	Events   []EventModel   `gorm:"many2many:simulation_events;joinForeignKey:SimulationID;joinReferences:EventID"`
	Stations []StationModel `gorm:"many2many:simulation_stations;joinForeignKey:SimulationID;joinReferences:StationID"`
}

// TableName specifies the table name for GORM
func (SimulationModel) TableName() string {
	return "simulations"
}

// ToDomain converts GORM model to domain entity, including loaded associations
func (m *SimulationModel) ToDomain() *simulations.Simulation {
	sim := &simulations.Simulation{
		ID:                  m.ID,
		UserID:              m.UserID,
		MeshID:              m.MeshID,
		ModelID:             m.ModelID,
		DateTimeCreated:     m.DateTimeCreated,
		AbsorbingConditions: m.AbsorbingConditions,
		SimulationParameters: simulations.SimulationParameters{
			Name:                       m.Name,
			SimulationType:             simulations.SimulationType(m.SimulationType),
			RecordLength:               m.RecordLength,
			ReceiversCanBeBuried:       m.ReceiversCanBeBuried,
			PrintSourceTimeFunction:    m.PrintSourceTimeFunction,
			SaveForward:                m.SaveForward,
			MovieSurface:               m.MovieSurface,
			MovieVolume:                m.MovieVolume,
			NTStepBetweenFrames:        m.NTStepBetweenFrames,
			HDurMovie:                  m.HDurMovie,
			OutputFormat:               m.OutputFormat,
			NTStepBetweenOutputSeismos: m.NTStepBetweenOutputSeismos,
		},
	}

	for i := range m.Events {
		sim.Events = append(sim.Events, m.Events[i].ToDomain())
	}
	for i := range m.Stations {
		sim.Stations = append(sim.Stations, m.Stations[i].ToDomain())
	}
	return sim
}

// FromDomain converts domain entity to GORM model. Associations are written
// through the repository's attach methods only.
func (m *SimulationModel) FromDomain(s *simulations.Simulation) {
	m.ID = s.ID
	m.UserID = s.UserID
	m.MeshID = s.MeshID
	m.ModelID = s.ModelID
	m.DateTimeCreated = s.DateTimeCreated
	m.Name = s.Name
	m.SimulationType = int(s.SimulationType)
	m.AbsorbingConditions = s.AbsorbingConditions
	m.RecordLength = s.RecordLength
	m.ReceiversCanBeBuried = s.ReceiversCanBeBuried
	m.PrintSourceTimeFunction = s.PrintSourceTimeFunction
	m.SaveForward = s.SaveForward
	m.MovieSurface = s.MovieSurface
	m.MovieVolume = s.MovieVolume
	m.NTStepBetweenFrames = s.NTStepBetweenFrames
	m.HDurMovie = s.HDurMovie
	m.OutputFormat = s.OutputFormat
	m.NTStepBetweenOutputSeismos = s.NTStepBetweenOutputSeismos
}

// EventsFromDomain converts catalogue events for association writes
func EventsFromDomain(events []*seismo.Event) []EventModel {
	out := make([]EventModel, len(events))
	for i, e := range events {
		out[i].FromDomain(e)
	}
	return out
}

// StationsFromDomain converts catalogue stations for association writes
func StationsFromDomain(stations []*seismo.Station) []StationModel {
	out := make([]StationModel, len(stations))
	for i, s := range stations {
		out[i].FromDomain(s)
	}
	return out
}

package models

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
)

// EventModel is the GORM database model for catalogue events
type EventModel struct {
	ID                   string    `gorm:"primaryKey;type:uuid"`
	Name                 string    `gorm:"not null;type:varchar(64)"`
	Region               string    `gorm:"type:varchar(128)"`
	OriginTime           time.Time `gorm:"not null"`
	TimeShift            float64
	HalfDuration         float64
	Latitude             float64
	Longitude            float64
	Depth                float64
	BodyWaveMagnitude    float64
	SurfaceWaveMagnitude float64
	Mrr                  float64
	Mtt                  float64
	Mpp                  float64
	Mrt                  float64
	Mrp                  float64
	Mtp                  float64
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *seismo.Event {
	return &seismo.Event{
		ID:                   m.ID,
		Name:                 m.Name,
		Region:               m.Region,
		OriginTime:           m.OriginTime,
		TimeShift:            m.TimeShift,
		HalfDuration:         m.HalfDuration,
		Latitude:             m.Latitude,
		Longitude:            m.Longitude,
		Depth:                m.Depth,
		BodyWaveMagnitude:    m.BodyWaveMagnitude,
		SurfaceWaveMagnitude: m.SurfaceWaveMagnitude,
		Mrr:                  m.Mrr,
		Mtt:                  m.Mtt,
		Mpp:                  m.Mpp,
		Mrt:                  m.Mrt,
		Mrp:                  m.Mrp,
		Mtp:                  m.Mtp,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *seismo.Event) {
	*m = EventModel{
		ID:                   e.ID,
		Name:                 e.Name,
		Region:               e.Region,
		OriginTime:           e.OriginTime,
		TimeShift:            e.TimeShift,
		HalfDuration:         e.HalfDuration,
		Latitude:             e.Latitude,
		Longitude:            e.Longitude,
		Depth:                e.Depth,
		BodyWaveMagnitude:    e.BodyWaveMagnitude,
		SurfaceWaveMagnitude: e.SurfaceWaveMagnitude,
		Mrr:                  e.Mrr,
		Mtt:                  e.Mtt,
		Mpp:                  e.Mpp,
		Mrt:                  e.Mrt,
		Mrp:                  e.Mrp,
		Mtp:                  e.Mtp,
	}
}

// StationModel is the GORM database model for catalogue stations
type StationModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Code        string `gorm:"not null;type:varchar(32);uniqueIndex:idx_station_network_code"`
	Network     string `gorm:"not null;type:varchar(8);uniqueIndex:idx_station_network_code"`
	Latitude    float64
	Longitude   float64
	Elevation   float64
	BurialDepth float64
}

// TableName specifies the table name for GORM
func (StationModel) TableName() string {
	return "stations"
}

// ToDomain converts GORM model to domain entity
func (m *StationModel) ToDomain() *seismo.Station {
	return &seismo.Station{
		ID:          m.ID,
		Code:        m.Code,
		Network:     m.Network,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Elevation:   m.Elevation,
		BurialDepth: m.BurialDepth,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StationModel) FromDomain(s *seismo.Station) {
	m.ID = s.ID
	m.Code = s.Code
	m.Network = s.Network
	m.Latitude = s.Latitude
	m.Longitude = s.Longitude
	m.Elevation = s.Elevation
	m.BurialDepth = s.BurialDepth
}

package models

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
)

// EarthModelModel is the GORM database model for earth models
type EarthModelModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:varchar(255)"`
	DateTimeCreated time.Time `gorm:"not null"`
	Type            string    `gorm:"not null;type:varchar(50)"`
	Oceans          bool
	Gravity         bool
	Attenuation     bool
	Topography      bool
	Rotation        bool
	Ellipticity     bool
}

// TableName specifies the table name for GORM
func (EarthModelModel) TableName() string {
	return "models"
}

// ToDomain converts GORM model to domain entity
func (m *EarthModelModel) ToDomain() *simulations.Model {
	return &simulations.Model{
		ID:              m.ID,
		UserID:          m.UserID,
		DateTimeCreated: m.DateTimeCreated,
		ModelParameters: simulations.ModelParameters{
			Type:        m.Type,
			Oceans:      m.Oceans,
			Gravity:     m.Gravity,
			Attenuation: m.Attenuation,
			Topography:  m.Topography,
			Rotation:    m.Rotation,
			Ellipticity: m.Ellipticity,
		},
	}
}

// FromDomain converts domain entity to GORM model
func (m *EarthModelModel) FromDomain(model *simulations.Model) {
	m.ID = model.ID
	m.UserID = model.UserID
	m.DateTimeCreated = model.DateTimeCreated
	m.Type = model.Type
	m.Oceans = model.Oceans
	m.Gravity = model.Gravity
	m.Attenuation = model.Attenuation
	m.Topography = model.Topography
	m.Rotation = model.Rotation
	m.Ellipticity = model.Ellipticity
}

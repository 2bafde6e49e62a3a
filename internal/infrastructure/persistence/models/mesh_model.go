package models

import (
	"time"

	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
)

// MeshModel is the GORM database model for meshes
type MeshModel struct {
	ID                   string    `gorm:"primaryKey;type:uuid"`
	UserID               string    `gorm:"not null;index;type:varchar(255)"`
	DateTimeCreated      time.Time `gorm:"not null"`
	Type                 int       `gorm:"not null"`
	NChunks              int       `gorm:"column:nchunks;not null"`
	NexXi                int       `gorm:"not null"`
	NexEta               int       `gorm:"not null"`
	NProcXi              int       `gorm:"column:nproc_xi;not null"`
	NProcEta             int       `gorm:"column:nproc_eta;not null"`
	AngularWidthXi       float64
	AngularWidthEta      float64
	CenterLatitude       float64
	CenterLongitude      float64
	GammaRotationAzimuth float64
}

// TableName specifies the table name for GORM
func (MeshModel) TableName() string {
	return "meshes"
}

// ToDomain converts GORM model to domain entity
func (m *MeshModel) ToDomain() *simulations.Mesh {
	return &simulations.Mesh{
		ID:              m.ID,
		UserID:          m.UserID,
		DateTimeCreated: m.DateTimeCreated,
		MeshParameters: simulations.MeshParameters{
			Type:                 simulations.MeshType(m.Type),
			NChunks:              m.NChunks,
			NexXi:                m.NexXi,
			NexEta:               m.NexEta,
			NProcXi:              m.NProcXi,
			NProcEta:             m.NProcEta,
			AngularWidthXi:       m.AngularWidthXi,
			AngularWidthEta:      m.AngularWidthEta,
			CenterLatitude:       m.CenterLatitude,
			CenterLongitude:      m.CenterLongitude,
			GammaRotationAzimuth: m.GammaRotationAzimuth,
		},
	}
}

// FromDomain converts domain entity to GORM model
func (m *MeshModel) FromDomain(mesh *simulations.Mesh) {
	m.ID = mesh.ID
	m.UserID = mesh.UserID
	m.DateTimeCreated = mesh.DateTimeCreated
	m.Type = int(mesh.Type)
	m.NChunks = mesh.NChunks
	m.NexXi = mesh.NexXi
	m.NexEta = mesh.NexEta
	m.NProcXi = mesh.NProcXi
	m.NProcEta = mesh.NProcEta
	m.AngularWidthXi = mesh.AngularWidthXi
	m.AngularWidthEta = mesh.AngularWidthEta
	m.CenterLatitude = mesh.CenterLatitude
	m.CenterLongitude = mesh.CenterLongitude
	m.GammaRotationAzimuth = mesh.GammaRotationAzimuth
}

package simulations

import "time"

// MeshParameters are the user-entered fields of a mesh
type MeshParameters struct {
	Type                 MeshType `mapstructure:"type" json:"type" validate:"required,oneof=1 2"`
	NChunks              int      `mapstructure:"nchunks" json:"nchunks" validate:"required,nchunks"`
	NexXi                int      `mapstructure:"nex_xi" json:"nex_xi" validate:"required,min=16,max=4096"`
	NexEta               int      `mapstructure:"nex_eta" json:"nex_eta" validate:"required,min=16,max=4096"`
	NProcXi              int      `mapstructure:"nproc_xi" json:"nproc_xi" validate:"required,min=1,max=256"`
	NProcEta             int      `mapstructure:"nproc_eta" json:"nproc_eta" validate:"required,min=1,max=256"`
	AngularWidthXi       float64  `mapstructure:"angular_width_xi" json:"angular_width_xi" validate:"gte=0,lte=90"`
	AngularWidthEta      float64  `mapstructure:"angular_width_eta" json:"angular_width_eta" validate:"gte=0,lte=90"`
	CenterLatitude       float64  `mapstructure:"center_latitude" json:"center_latitude" validate:"gte=-90,lte=90"`
	CenterLongitude      float64  `mapstructure:"center_longitude" json:"center_longitude" validate:"gte=-180,lte=180"`
	GammaRotationAzimuth float64  `mapstructure:"gamma_rotation_azimuth" json:"gamma_rotation_azimuth" validate:"gte=-360,lte=360"`
}

// Mesh entity
type Mesh struct {
	ID              string    `json:"id" validate:"required,uuid4"`
	UserID          string    `json:"user_id" validate:"required,uuid4"`
	DateTimeCreated time.Time `json:"date_time_created" validate:"required"`
	MeshParameters
}

// Validate for validating Mesh struct
func (m *Mesh) Validate() error {
	return validateEntity(m)
}

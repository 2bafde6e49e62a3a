package simulations

import "time"

// ModelParameters are the user-entered fields of an earth model
type ModelParameters struct {
	Type        string `mapstructure:"type" json:"type" validate:"required,oneof=isotropic_prem transversly_isotropic_prem iaspei ak135 3D_isotropic 3D_anisotropic 3D_attenuation s20rts s362ani"`
	Oceans      bool   `mapstructure:"oceans" json:"oceans"`
	Gravity     bool   `mapstructure:"gravity" json:"gravity"`
	Attenuation bool   `mapstructure:"attenuation" json:"attenuation"`
	Topography  bool   `mapstructure:"topography" json:"topography"`
	Rotation    bool   `mapstructure:"rotation" json:"rotation"`
	Ellipticity bool   `mapstructure:"ellipticity" json:"ellipticity"`
}

// Model entity
type Model struct {
	ID              string    `json:"id" validate:"required,uuid4"`
	UserID          string    `json:"user_id" validate:"required,uuid4"`
	DateTimeCreated time.Time `json:"date_time_created" validate:"required"`
	ModelParameters
}

// Validate for validating Model struct
func (m *Model) Validate() error {
	return validateEntity(m)
}

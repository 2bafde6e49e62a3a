package models

// All lists every model for schema migration
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&UserInfoModel{},
		&MeshModel{},
		&EarthModelModel{},
		&EventModel{},
		&StationModel{},
		&SimulationModel{},
	}
}

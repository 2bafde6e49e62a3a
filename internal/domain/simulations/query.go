package simulations

import (
	"github.com/MGTheTrain/specfem-web/internal/pkg/validators"
)

// SimulationQuery filters and pages a user's simulations
type SimulationQuery struct {
	Name      string `form:"name" validate:"omitempty,max=100"`
	Limit     int    `form:"limit" validate:"omitempty,gt=0,lte=1000"`
	Offset    int    `form:"offset" validate:"omitempty,gte=0"`
	SortBy    string `form:"sort_by" validate:"omitempty,oneof=name date_time_created simulation_type"`
	SortOrder string `form:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// NewSimulationQuery lists newest first
func NewSimulationQuery() *SimulationQuery {
	return &SimulationQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating SimulationQuery struct
func (q *SimulationQuery) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	return validators.Summarize(validate.Struct(q))
}

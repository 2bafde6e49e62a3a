//go:build unit
// +build unit

package seismo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventValidation(t *testing.T) {
	event := &Event{
		ID:                   uuid.NewString(),
		Name:                 "110302J",
		Region:               "CENTRAL ALASKA",
		OriginTime:           time.Date(2002, 11, 3, 22, 12, 41, 0, time.UTC),
		TimeShift:            49.55,
		HalfDuration:         25,
		Latitude:             63.23,
		Longitude:            -144.89,
		Depth:                15,
		BodyWaveMagnitude:    7.0,
		SurfaceWaveMagnitude: 8.5,
		Mrr:                  1.04e27,
	}
	require.NoError(t, event.Validate())

	event.Latitude = 95
	err := event.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Latitude, Tag: lte")
}

func TestStationValidation(t *testing.T) {
	station := &Station{ID: uuid.NewString(), Code: "ANMO", Network: "IU", Latitude: 34.9, Longitude: -106.5}
	require.NoError(t, station.Validate())

	station.Code = "AN MO"
	assert.Error(t, station.Validate())

	station.Code = "ANMO"
	station.ID = ""
	assert.Error(t, station.Validate())
}

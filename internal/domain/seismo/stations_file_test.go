//go:build unit
// +build unit

package seismo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStations(t *testing.T) {
	input := `# code network lat lon elevation burial
AAK  II   42.6375   74.4942  1645.0  30.0

ANMO IU   34.9459 -106.4572  1850.0 100.0
`
	stations, err := ParseStations(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stations, 2)

	assert.Equal(t, "AAK", stations[0].Code)
	assert.Equal(t, "II", stations[0].Network)
	assert.Equal(t, 42.6375, stations[0].Latitude)
	assert.Equal(t, 74.4942, stations[0].Longitude)
	assert.Equal(t, 1645.0, stations[0].Elevation)
	assert.Equal(t, 30.0, stations[0].BurialDepth)
	assert.Equal(t, -106.4572, stations[1].Longitude)
	assert.Empty(t, stations[1].ID)
}

func TestParseStations_WrongFieldCount(t *testing.T) {
	_, err := ParseStations(strings.NewReader("AAK II 42.6 74.5 1645.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1: expected 6 fields")
}

func TestParseStations_InvalidNumber(t *testing.T) {
	_, err := ParseStations(strings.NewReader("AAK II north 74.5 1645.0 30\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid number "north"`)
}

//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/MGTheTrain/specfem-web/internal/infrastructure/persistence"
	"github.com/MGTheTrain/specfem-web/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ImportStations(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	input := "AAK II 42.6375 74.4942 1645.0 30.0\nANMO IU 34.9459 -106.4572 1850.0 100.0\n"
	stations, err := services.CatalogService.ImportStations(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, stations, 2)

	list, err := services.CatalogService.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "II", list[0].Network)
}

func TestCatalogService_ImportStations_ParseError(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.CatalogService.ImportStations(context.Background(), strings.NewReader("AAK II\n"))
	assert.Error(t, err)

	list, err := services.CatalogService.ListStations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogService_CreateEvent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	event, err := services.CatalogService.CreateEvent(context.Background(), persistence.CreateTestEvent(t, "110302J"))
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)

	events, err := services.CatalogService.ListEvents(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

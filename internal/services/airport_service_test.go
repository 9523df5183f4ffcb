package services

import (
	"testing"

	"skyrio/internal/domain/models"
	"skyrio/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAirportServiceSearch(t *testing.T) {
	repo, err := repositories.NewAirportRepository([]models.Airport{
		{Name: "Singapore Changi Airport", Code: "SIN"},
		{Name: "Sydney Kingsford Smith Airport", Code: "SYD"},
	})
	require.NoError(t, err)

	svc := AirportService{Repo: repo, Logger: zap.NewNop()}
	assert.Len(t, svc.Search("req", "s"), 2)
	assert.Equal(t, "SYD", svc.Search("req", "Kingsford")[0].Code)
	assert.Empty(t, svc.Search("req", "lhr"))
}

func TestAirportServiceWithoutCatalog(t *testing.T) {
	got := AirportService{}.Search("req", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

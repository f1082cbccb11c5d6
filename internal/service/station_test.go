package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecolithswap-backend/internal/domain"
)

func TestNearbyStations(t *testing.T) {
	ctx := context.Background()

	// Nairobi CBD and stations at increasing distance from it.
	cbdLat, cbdLng := -1.2864, 36.8172
	stations := []domain.Station{
		{ID: 1, Name: "Westlands", Latitude: -1.2672, Longitude: 36.8110},
		{ID: 2, Name: "CBD", Latitude: -1.2864, Longitude: 36.8172},
		{ID: 3, Name: "Karen", Latitude: -1.3194, Longitude: 36.7064},
		{ID: 4, Name: "Thika", Latitude: -1.0333, Longitude: 37.0693},
	}

	t.Run("SortedByDistanceWithinRadius", func(t *testing.T) {
		stationRepo := new(MockStationRepository)
		svc := NewStationService(stationRepo)
		stationRepo.On("ListActive", ctx).Return(stations, nil)

		// Thika is roughly 40km out and must be excluded.
		results, err := svc.NearbyStations(ctx, cbdLat, cbdLng, 15, 10)
		assert.NoError(t, err)
		assert.Len(t, results, 3)
		assert.Equal(t, int32(2), results[0].Station.ID)
		assert.Equal(t, int32(1), results[1].Station.ID)
		assert.Equal(t, int32(3), results[2].Station.ID)
		assert.InDelta(t, 0, results[0].DistanceKm, 0.01)
	})

	t.Run("LimitApplies", func(t *testing.T) {
		stationRepo := new(MockStationRepository)
		svc := NewStationService(stationRepo)
		stationRepo.On("ListActive", ctx).Return(stations, nil)

		results, err := svc.NearbyStations(ctx, cbdLat, cbdLng, 100, 2)
		assert.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("BadCoordinates", func(t *testing.T) {
		stationRepo := new(MockStationRepository)
		svc := NewStationService(stationRepo)

		_, err := svc.NearbyStations(ctx, 91, 0, 10, 10)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

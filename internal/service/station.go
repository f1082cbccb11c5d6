package service

import (
	"context"
	"math"
	"sort"

	"ecolithswap-backend/internal/domain"
	"ecolithswap-backend/internal/repository"
)

type stationService struct {
	stationRepo repository.StationRepository
}

func NewStationService(stationRepo repository.StationRepository) StationService {
	return &stationService{stationRepo: stationRepo}
}

func (s *stationService) CreateStation(ctx context.Context, station *domain.Station) error {
	if !station.Type.Valid() {
		return domain.Validationf("invalid station type %q", station.Type)
	}
	return s.stationRepo.Create(ctx, station)
}

func (s *stationService) GetStation(ctx context.Context, id int32) (*domain.Station, error) {
	return s.stationRepo.GetByID(ctx, id)
}

func (s *stationService) UpdateStation(ctx context.Context, station *domain.Station) error {
	if !station.Type.Valid() {
		return domain.Validationf("invalid station type %q", station.Type)
	}
	return s.stationRepo.Update(ctx, station)
}

func (s *stationService) DeleteStation(ctx context.Context, id int32) error {
	return s.stationRepo.Delete(ctx, id)
}

func (s *stationService) ListStations(ctx context.Context, page, pageSize int32) ([]domain.Station, int32, error) {
	return s.stationRepo.List(ctx, page, pageSize)
}

func (s *stationService) NearbyStations(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]domain.StationDistance, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domain.Validationf("invalid coordinates (%f, %f)", lat, lng)
	}
	if radiusKm <= 0 {
		radiusKm = 10
	}
	if limit <= 0 {
		limit = 20
	}

	stations, err := s.stationRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var results []domain.StationDistance
	for _, st := range stations {
		d := haversineKm(lat, lng, st.Latitude, st.Longitude)
		if d <= radiusKm {
			results = append(results, domain.StationDistance{Station: st, DistanceKm: d})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *stationService) SetMaintenance(ctx context.Context, id int32, maintenance bool) error {
	return s.stationRepo.SetMaintenance(ctx, id, maintenance)
}

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance between two coordinates.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

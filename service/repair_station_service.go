// service/repair_station_service.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/mobility/model"
)

type IRepairStationService interface {
	ListRepairStations(ctx context.Context) ([]*model.RepairStation, error)
}

type RepairStationService struct {
	store RepairStationStore
}

var _ IRepairStationService = &RepairStationService{}

func NewRepairStationService(store RepairStationStore) *RepairStationService {
	return &RepairStationService{store: store}
}

func (s *RepairStationService) ListRepairStations(ctx context.Context) ([]*model.RepairStation, error) {
	return s.store.ListRepairStations(ctx)
}

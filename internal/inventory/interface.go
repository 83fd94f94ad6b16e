package inventory

import (
	"context"
	"net/http"
)

// VehicleManager defines the interface for inventory service operations
type VehicleManager interface {
	GetVehicles(ctx context.Context) ([]*Vehicle, error)
	FilterVehicles(ctx context.Context, criteria Criteria) ([]*Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*Vehicle, error)
	AddVehicle(ctx context.Context, vehicle *Vehicle) (*Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *Vehicle) (*Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) (*http.Response, error)
	GetDistance(ctx context.Context, id1, id2 int64) (float64, error)
	GetNearestVehicle(ctx context.Context, id int64) (*Vehicle, error)
}

var _ VehicleManager = (*Manager)(nil)

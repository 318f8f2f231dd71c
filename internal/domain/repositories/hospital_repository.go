package repositories

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// HospitalRepository defines the backend operations on hospitals
type HospitalRepository interface {
	FetchHospitals(ctx context.Context) ([]entities.Hospital, error)
	GetHospital(ctx context.Context, id string) (*entities.Hospital, error)
	CreateHospital(ctx context.Context, input entities.HospitalInput) (*entities.Hospital, error)
	UpdateHospital(ctx context.Context, id string, input entities.HospitalInput) (*entities.Hospital, error)
	DeleteHospital(ctx context.Context, id string) error
}

// BuildingRepository defines the backend operations on buildings
type BuildingRepository interface {
	FetchBuildings(ctx context.Context) ([]entities.Building, error)
	GetBuilding(ctx context.Context, id string) (*entities.Building, error)
	CreateBuilding(ctx context.Context, input entities.BuildingInput) (*entities.Building, error)
	UpdateBuilding(ctx context.Context, id string, input entities.BuildingInput) (*entities.Building, error)
	DeleteBuilding(ctx context.Context, id string) error
}

// FloorRepository defines the backend operations on floors
type FloorRepository interface {
	FetchFloors(ctx context.Context) ([]entities.Floor, error)
	GetFloor(ctx context.Context, id string) (*entities.Floor, error)
	CreateFloor(ctx context.Context, input entities.FloorInput) (*entities.Floor, error)
	UpdateFloor(ctx context.Context, id string, input entities.FloorInput) (*entities.Floor, error)
	DeleteFloor(ctx context.Context, id string) error
}

// WardRepository defines the backend operations on wards
type WardRepository interface {
	FetchWards(ctx context.Context) ([]entities.Ward, error)
	GetWard(ctx context.Context, id string) (*entities.Ward, error)
	CreateWard(ctx context.Context, input entities.WardInput) (*entities.Ward, error)
	UpdateWard(ctx context.Context, id string, input entities.WardInput) (*entities.Ward, error)
	DeleteWard(ctx context.Context, id string) error
}

// BedRepository defines the backend operations on beds
type BedRepository interface {
	FetchBeds(ctx context.Context) ([]entities.Bed, error)
	GetBed(ctx context.Context, id string) (*entities.Bed, error)
	CreateBed(ctx context.Context, input entities.BedInput) (*entities.Bed, error)
	UpdateBed(ctx context.Context, id string, input entities.BedInput) (*entities.Bed, error)
	DeleteBed(ctx context.Context, id string) error
}

// DeviceRepository defines the backend operations on call devices
type DeviceRepository interface {
	FetchDevices(ctx context.Context) ([]entities.Device, error)
	GetDevice(ctx context.Context, id string) (*entities.Device, error)
	CreateDevice(ctx context.Context, input entities.DeviceInput) (*entities.Device, error)
	UpdateDevice(ctx context.Context, id string, input entities.DeviceInput) (*entities.Device, error)
	DeleteDevice(ctx context.Context, id string) error
}

package restapi

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// FetchHospitals returns all hospitals
func (a *Accessors) FetchHospitals(ctx context.Context) ([]entities.Hospital, error) {
	return list[entities.Hospital](ctx, a.client, HospitalsPath)
}

// GetHospital returns one hospital by id
func (a *Accessors) GetHospital(ctx context.Context, id string) (*entities.Hospital, error) {
	return get[entities.Hospital](ctx, a.client, HospitalsPath, id)
}

// CreateHospital creates a hospital from the fields set in input
func (a *Accessors) CreateHospital(ctx context.Context, input entities.HospitalInput) (*entities.Hospital, error) {
	return create[entities.Hospital](ctx, a.client, HospitalsPath, input)
}

// UpdateHospital sends the fields set in input as a partial update
func (a *Accessors) UpdateHospital(ctx context.Context, id string, input entities.HospitalInput) (*entities.Hospital, error) {
	return update[entities.Hospital](ctx, a.client, HospitalsPath, id, input)
}

// DeleteHospital deletes a hospital
func (a *Accessors) DeleteHospital(ctx context.Context, id string) error {
	return remove(ctx, a.client, HospitalsPath, id)
}

// FetchBuildings returns all buildings
func (a *Accessors) FetchBuildings(ctx context.Context) ([]entities.Building, error) {
	return list[entities.Building](ctx, a.client, BuildingsPath)
}

// GetBuilding returns one building by id
func (a *Accessors) GetBuilding(ctx context.Context, id string) (*entities.Building, error) {
	return get[entities.Building](ctx, a.client, BuildingsPath, id)
}

// CreateBuilding creates a building from the fields set in input
func (a *Accessors) CreateBuilding(ctx context.Context, input entities.BuildingInput) (*entities.Building, error) {
	return create[entities.Building](ctx, a.client, BuildingsPath, input)
}

// UpdateBuilding sends the fields set in input as a partial update
func (a *Accessors) UpdateBuilding(ctx context.Context, id string, input entities.BuildingInput) (*entities.Building, error) {
	return update[entities.Building](ctx, a.client, BuildingsPath, id, input)
}

// DeleteBuilding deletes a building
func (a *Accessors) DeleteBuilding(ctx context.Context, id string) error {
	return remove(ctx, a.client, BuildingsPath, id)
}

// FetchFloors returns all floors
func (a *Accessors) FetchFloors(ctx context.Context) ([]entities.Floor, error) {
	return list[entities.Floor](ctx, a.client, FloorsPath)
}

// GetFloor returns one floor by id
func (a *Accessors) GetFloor(ctx context.Context, id string) (*entities.Floor, error) {
	return get[entities.Floor](ctx, a.client, FloorsPath, id)
}

// CreateFloor creates a floor from the fields set in input
func (a *Accessors) CreateFloor(ctx context.Context, input entities.FloorInput) (*entities.Floor, error) {
	return create[entities.Floor](ctx, a.client, FloorsPath, input)
}

// UpdateFloor sends the fields set in input as a partial update
func (a *Accessors) UpdateFloor(ctx context.Context, id string, input entities.FloorInput) (*entities.Floor, error) {
	return update[entities.Floor](ctx, a.client, FloorsPath, id, input)
}

// DeleteFloor deletes a floor
func (a *Accessors) DeleteFloor(ctx context.Context, id string) error {
	return remove(ctx, a.client, FloorsPath, id)
}

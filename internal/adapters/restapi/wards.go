package restapi

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// FetchWards returns all wards
func (a *Accessors) FetchWards(ctx context.Context) ([]entities.Ward, error) {
	return list[entities.Ward](ctx, a.client, WardsPath)
}

// GetWard returns one ward by id
func (a *Accessors) GetWard(ctx context.Context, id string) (*entities.Ward, error) {
	return get[entities.Ward](ctx, a.client, WardsPath, id)
}

// CreateWard creates a ward from the fields set in input
func (a *Accessors) CreateWard(ctx context.Context, input entities.WardInput) (*entities.Ward, error) {
	return create[entities.Ward](ctx, a.client, WardsPath, input)
}

// UpdateWard sends the fields set in input as a partial update
func (a *Accessors) UpdateWard(ctx context.Context, id string, input entities.WardInput) (*entities.Ward, error) {
	return update[entities.Ward](ctx, a.client, WardsPath, id, input)
}

// DeleteWard deletes a ward
func (a *Accessors) DeleteWard(ctx context.Context, id string) error {
	return remove(ctx, a.client, WardsPath, id)
}

// FetchBeds returns all beds
func (a *Accessors) FetchBeds(ctx context.Context) ([]entities.Bed, error) {
	return list[entities.Bed](ctx, a.client, BedsPath)
}

// GetBed returns one bed by id
func (a *Accessors) GetBed(ctx context.Context, id string) (*entities.Bed, error) {
	return get[entities.Bed](ctx, a.client, BedsPath, id)
}

// CreateBed creates a bed from the fields set in input
func (a *Accessors) CreateBed(ctx context.Context, input entities.BedInput) (*entities.Bed, error) {
	return create[entities.Bed](ctx, a.client, BedsPath, input)
}

// UpdateBed sends the fields set in input as a partial update
func (a *Accessors) UpdateBed(ctx context.Context, id string, input entities.BedInput) (*entities.Bed, error) {
	return update[entities.Bed](ctx, a.client, BedsPath, id, input)
}

// DeleteBed deletes a bed
func (a *Accessors) DeleteBed(ctx context.Context, id string) error {
	return remove(ctx, a.client, BedsPath, id)
}

// FetchDevices returns all call devices
func (a *Accessors) FetchDevices(ctx context.Context) ([]entities.Device, error) {
	return list[entities.Device](ctx, a.client, DevicesPath)
}

// GetDevice returns one device by id
func (a *Accessors) GetDevice(ctx context.Context, id string) (*entities.Device, error) {
	return get[entities.Device](ctx, a.client, DevicesPath, id)
}

// CreateDevice creates a device from the fields set in input
func (a *Accessors) CreateDevice(ctx context.Context, input entities.DeviceInput) (*entities.Device, error) {
	return create[entities.Device](ctx, a.client, DevicesPath, input)
}

// UpdateDevice sends the fields set in input as a partial update
func (a *Accessors) UpdateDevice(ctx context.Context, id string, input entities.DeviceInput) (*entities.Device, error) {
	return update[entities.Device](ctx, a.client, DevicesPath, id, input)
}

// DeleteDevice deletes a device
func (a *Accessors) DeleteDevice(ctx context.Context, id string) error {
	return remove(ctx, a.client, DevicesPath, id)
}

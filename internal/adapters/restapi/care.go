package restapi

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// FetchCalls returns all nurse calls
func (a *Accessors) FetchCalls(ctx context.Context) ([]entities.Call, error) {
	return list[entities.Call](ctx, a.client, CallsPath)
}

// GetCall returns one call by id
func (a *Accessors) GetCall(ctx context.Context, id string) (*entities.Call, error) {
	return get[entities.Call](ctx, a.client, CallsPath, id)
}

// CreateCall creates a call from the fields set in input
func (a *Accessors) CreateCall(ctx context.Context, input entities.CallInput) (*entities.Call, error) {
	return create[entities.Call](ctx, a.client, CallsPath, input)
}

// UpdateCall sends the fields set in input as a partial update
func (a *Accessors) UpdateCall(ctx context.Context, id string, input entities.CallInput) (*entities.Call, error) {
	return update[entities.Call](ctx, a.client, CallsPath, id, input)
}

// DeleteCall deletes a call
func (a *Accessors) DeleteCall(ctx context.Context, id string) error {
	return remove(ctx, a.client, CallsPath, id)
}

// FetchPatients returns all patients
func (a *Accessors) FetchPatients(ctx context.Context) ([]entities.Patient, error) {
	return list[entities.Patient](ctx, a.client, PatientsPath)
}

// GetPatient returns one patient by id
func (a *Accessors) GetPatient(ctx context.Context, id string) (*entities.Patient, error) {
	return get[entities.Patient](ctx, a.client, PatientsPath, id)
}

// CreatePatient creates a patient from the fields set in input
func (a *Accessors) CreatePatient(ctx context.Context, input entities.PatientInput) (*entities.Patient, error) {
	return create[entities.Patient](ctx, a.client, PatientsPath, input)
}

// UpdatePatient sends the fields set in input as a partial update
func (a *Accessors) UpdatePatient(ctx context.Context, id string, input entities.PatientInput) (*entities.Patient, error) {
	return update[entities.Patient](ctx, a.client, PatientsPath, id, input)
}

// DeletePatient deletes a patient
func (a *Accessors) DeletePatient(ctx context.Context, id string) error {
	return remove(ctx, a.client, PatientsPath, id)
}

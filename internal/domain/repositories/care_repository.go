package repositories

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// CallRepository defines the backend operations on nurse calls
type CallRepository interface {
	FetchCalls(ctx context.Context) ([]entities.Call, error)
	GetCall(ctx context.Context, id string) (*entities.Call, error)
	CreateCall(ctx context.Context, input entities.CallInput) (*entities.Call, error)
	UpdateCall(ctx context.Context, id string, input entities.CallInput) (*entities.Call, error)
	DeleteCall(ctx context.Context, id string) error
}

// PatientRepository defines the backend operations on patients
type PatientRepository interface {
	FetchPatients(ctx context.Context) ([]entities.Patient, error)
	GetPatient(ctx context.Context, id string) (*entities.Patient, error)
	CreatePatient(ctx context.Context, input entities.PatientInput) (*entities.Patient, error)
	UpdatePatient(ctx context.Context, id string, input entities.PatientInput) (*entities.Patient, error)
	DeletePatient(ctx context.Context, id string) error
}

// AdminAPI is the full accessor set used by the admin console
type AdminAPI interface {
	HospitalRepository
	BuildingRepository
	FloorRepository
	WardRepository
	BedRepository
	DeviceRepository
	StaffTeamRepository
	NurseRepository
	TeamAssignmentRepository
	CallRepository
	PatientRepository
	UserRepository
}

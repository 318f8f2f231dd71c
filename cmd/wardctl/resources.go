package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zatekoja/wardcall/internal/domain/repositories"
	apperrors "github.com/zatekoja/wardcall/pkg/errors"
)

// resource adapts one typed accessor group to untyped CLI arguments
type resource struct {
	list   func(ctx context.Context, api repositories.AdminAPI) (interface{}, error)
	get    func(ctx context.Context, api repositories.AdminAPI, id string) (interface{}, error)
	create func(ctx context.Context, api repositories.AdminAPI, data []byte) (interface{}, error)
	update func(ctx context.Context, api repositories.AdminAPI, id string, data []byte) (interface{}, error)
	remove func(ctx context.Context, api repositories.AdminAPI, id string) error
}

func crud[T, I any](
	list func(repositories.AdminAPI, context.Context) ([]T, error),
	get func(repositories.AdminAPI, context.Context, string) (*T, error),
	create func(repositories.AdminAPI, context.Context, I) (*T, error),
	update func(repositories.AdminAPI, context.Context, string, I) (*T, error),
	remove func(repositories.AdminAPI, context.Context, string) error,
) resource {
	return resource{
		list: func(ctx context.Context, api repositories.AdminAPI) (interface{}, error) {
			return list(api, ctx)
		},
		get: func(ctx context.Context, api repositories.AdminAPI, id string) (interface{}, error) {
			return get(api, ctx, id)
		},
		create: func(ctx context.Context, api repositories.AdminAPI, data []byte) (interface{}, error) {
			input, err := decodeInput[I](data)
			if err != nil {
				return nil, err
			}
			return create(api, ctx, input)
		},
		update: func(ctx context.Context, api repositories.AdminAPI, id string, data []byte) (interface{}, error) {
			input, err := decodeInput[I](data)
			if err != nil {
				return nil, err
			}
			return update(api, ctx, id, input)
		},
		remove: func(ctx context.Context, api repositories.AdminAPI, id string) error {
			return remove(api, ctx, id)
		},
	}
}

type adminAPI = repositories.AdminAPI

// resources maps CLI names to accessor groups
var resources = map[string]resource{
	"hospitals":        crud(adminAPI.FetchHospitals, adminAPI.GetHospital, adminAPI.CreateHospital, adminAPI.UpdateHospital, adminAPI.DeleteHospital),
	"buildings":        crud(adminAPI.FetchBuildings, adminAPI.GetBuilding, adminAPI.CreateBuilding, adminAPI.UpdateBuilding, adminAPI.DeleteBuilding),
	"floors":           crud(adminAPI.FetchFloors, adminAPI.GetFloor, adminAPI.CreateFloor, adminAPI.UpdateFloor, adminAPI.DeleteFloor),
	"wards":            crud(adminAPI.FetchWards, adminAPI.GetWard, adminAPI.CreateWard, adminAPI.UpdateWard, adminAPI.DeleteWard),
	"beds":             crud(adminAPI.FetchBeds, adminAPI.GetBed, adminAPI.CreateBed, adminAPI.UpdateBed, adminAPI.DeleteBed),
	"devices":          crud(adminAPI.FetchDevices, adminAPI.GetDevice, adminAPI.CreateDevice, adminAPI.UpdateDevice, adminAPI.DeleteDevice),
	"staff-teams":      crud(adminAPI.FetchStaffTeams, adminAPI.GetStaffTeam, adminAPI.CreateStaffTeam, adminAPI.UpdateStaffTeam, adminAPI.DeleteStaffTeam),
	"nurses":           crud(adminAPI.FetchNurses, adminAPI.GetNurse, adminAPI.CreateNurse, adminAPI.UpdateNurse, adminAPI.DeleteNurse),
	"team-assignments": crud(adminAPI.FetchTeamAssignments, adminAPI.GetTeamAssignment, adminAPI.CreateTeamAssignment, adminAPI.UpdateTeamAssignment, adminAPI.DeleteTeamAssignment),
	"calls":            crud(adminAPI.FetchCalls, adminAPI.GetCall, adminAPI.CreateCall, adminAPI.UpdateCall, adminAPI.DeleteCall),
	"patients":         crud(adminAPI.FetchPatients, adminAPI.GetPatient, adminAPI.CreatePatient, adminAPI.UpdatePatient, adminAPI.DeletePatient),
	"users":            crud(adminAPI.FetchUsers, adminAPI.GetUser, adminAPI.CreateUser, adminAPI.UpdateUser, adminAPI.DeleteUser),
}

func lookupResource(name string) (resource, error) {
	r, ok := resources[name]
	if !ok {
		return resource{}, apperrors.NewValidationError(fmt.Sprintf("unknown resource %q (known: %v)", name, resourceNames()))
	}
	return r, nil
}

func resourceNames() []string {
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// decodeInput parses a JSON document into a write shape. Unknown fields are
// rejected so a typo does not silently send an empty update.
func decodeInput[I any](data []byte) (I, error) {
	var input I
	if len(bytes.TrimSpace(data)) == 0 {
		return input, apperrors.NewValidationError("--data is required")
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return input, apperrors.NewValidationError(fmt.Sprintf("invalid --data: %v", err))
	}
	return input, nil
}

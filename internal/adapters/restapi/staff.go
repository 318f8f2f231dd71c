package restapi

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// FetchStaffTeams returns all staff teams
func (a *Accessors) FetchStaffTeams(ctx context.Context) ([]entities.StaffTeam, error) {
	return list[entities.StaffTeam](ctx, a.client, StaffTeamsPath)
}

// GetStaffTeam returns one staff team by id
func (a *Accessors) GetStaffTeam(ctx context.Context, id string) (*entities.StaffTeam, error) {
	return get[entities.StaffTeam](ctx, a.client, StaffTeamsPath, id)
}

// CreateStaffTeam creates a staff team from the fields set in input
func (a *Accessors) CreateStaffTeam(ctx context.Context, input entities.StaffTeamInput) (*entities.StaffTeam, error) {
	return create[entities.StaffTeam](ctx, a.client, StaffTeamsPath, input)
}

// UpdateStaffTeam sends the fields set in input as a partial update
func (a *Accessors) UpdateStaffTeam(ctx context.Context, id string, input entities.StaffTeamInput) (*entities.StaffTeam, error) {
	return update[entities.StaffTeam](ctx, a.client, StaffTeamsPath, id, input)
}

// DeleteStaffTeam deletes a staff team
func (a *Accessors) DeleteStaffTeam(ctx context.Context, id string) error {
	return remove(ctx, a.client, StaffTeamsPath, id)
}

// FetchNurses returns all nurses
func (a *Accessors) FetchNurses(ctx context.Context) ([]entities.Nurse, error) {
	return list[entities.Nurse](ctx, a.client, NursesPath)
}

// GetNurse returns one nurse by id
func (a *Accessors) GetNurse(ctx context.Context, id string) (*entities.Nurse, error) {
	return get[entities.Nurse](ctx, a.client, NursesPath, id)
}

// CreateNurse creates a nurse from the fields set in input
func (a *Accessors) CreateNurse(ctx context.Context, input entities.NurseInput) (*entities.Nurse, error) {
	return create[entities.Nurse](ctx, a.client, NursesPath, input)
}

// UpdateNurse sends the fields set in input as a partial update
func (a *Accessors) UpdateNurse(ctx context.Context, id string, input entities.NurseInput) (*entities.Nurse, error) {
	return update[entities.Nurse](ctx, a.client, NursesPath, id, input)
}

// DeleteNurse deletes a nurse
func (a *Accessors) DeleteNurse(ctx context.Context, id string) error {
	return remove(ctx, a.client, NursesPath, id)
}

// FetchTeamAssignments returns all team assignments
func (a *Accessors) FetchTeamAssignments(ctx context.Context) ([]entities.TeamAssignment, error) {
	return list[entities.TeamAssignment](ctx, a.client, TeamAssignmentsPath)
}

// GetTeamAssignment returns one team assignment by id
func (a *Accessors) GetTeamAssignment(ctx context.Context, id string) (*entities.TeamAssignment, error) {
	return get[entities.TeamAssignment](ctx, a.client, TeamAssignmentsPath, id)
}

// CreateTeamAssignment creates a team assignment from the fields set in input
func (a *Accessors) CreateTeamAssignment(ctx context.Context, input entities.TeamAssignmentInput) (*entities.TeamAssignment, error) {
	return create[entities.TeamAssignment](ctx, a.client, TeamAssignmentsPath, input)
}

// UpdateTeamAssignment sends the fields set in input as a partial update
func (a *Accessors) UpdateTeamAssignment(ctx context.Context, id string, input entities.TeamAssignmentInput) (*entities.TeamAssignment, error) {
	return update[entities.TeamAssignment](ctx, a.client, TeamAssignmentsPath, id, input)
}

// DeleteTeamAssignment deletes a team assignment
func (a *Accessors) DeleteTeamAssignment(ctx context.Context, id string) error {
	return remove(ctx, a.client, TeamAssignmentsPath, id)
}

package repositories

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
)

// StaffTeamRepository defines the backend operations on staff teams
type StaffTeamRepository interface {
	FetchStaffTeams(ctx context.Context) ([]entities.StaffTeam, error)
	GetStaffTeam(ctx context.Context, id string) (*entities.StaffTeam, error)
	CreateStaffTeam(ctx context.Context, input entities.StaffTeamInput) (*entities.StaffTeam, error)
	UpdateStaffTeam(ctx context.Context, id string, input entities.StaffTeamInput) (*entities.StaffTeam, error)
	DeleteStaffTeam(ctx context.Context, id string) error
}

// NurseRepository defines the backend operations on nurses
type NurseRepository interface {
	FetchNurses(ctx context.Context) ([]entities.Nurse, error)
	GetNurse(ctx context.Context, id string) (*entities.Nurse, error)
	CreateNurse(ctx context.Context, input entities.NurseInput) (*entities.Nurse, error)
	UpdateNurse(ctx context.Context, id string, input entities.NurseInput) (*entities.Nurse, error)
	DeleteNurse(ctx context.Context, id string) error
}

// TeamAssignmentRepository defines the backend operations on team assignments
type TeamAssignmentRepository interface {
	FetchTeamAssignments(ctx context.Context) ([]entities.TeamAssignment, error)
	GetTeamAssignment(ctx context.Context, id string) (*entities.TeamAssignment, error)
	CreateTeamAssignment(ctx context.Context, input entities.TeamAssignmentInput) (*entities.TeamAssignment, error)
	UpdateTeamAssignment(ctx context.Context, id string, input entities.TeamAssignmentInput) (*entities.TeamAssignment, error)
	DeleteTeamAssignment(ctx context.Context, id string) error
}

// UserRepository defines the backend operations on console users
type UserRepository interface {
	FetchUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	CreateUser(ctx context.Context, input entities.UserInput) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, input entities.UserInput) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error

	// FetchCurrentUser returns the account the session belongs to
	FetchCurrentUser(ctx context.Context) (*entities.User, error)
}

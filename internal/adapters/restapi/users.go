package restapi

import (
	"context"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	"github.com/zatekoja/wardcall/internal/infrastructure/clients/wardapi"
)

// FetchUsers returns all console users
func (a *Accessors) FetchUsers(ctx context.Context) ([]entities.User, error) {
	return list[entities.User](ctx, a.client, UsersPath)
}

// GetUser returns one user by id
func (a *Accessors) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return get[entities.User](ctx, a.client, UsersPath, id)
}

// CreateUser creates a user from the fields set in input
func (a *Accessors) CreateUser(ctx context.Context, input entities.UserInput) (*entities.User, error) {
	return create[entities.User](ctx, a.client, UsersPath, input)
}

// UpdateUser sends the fields set in input as a partial update
func (a *Accessors) UpdateUser(ctx context.Context, id string, input entities.UserInput) (*entities.User, error) {
	return update[entities.User](ctx, a.client, UsersPath, id, input)
}

// DeleteUser deletes a user
func (a *Accessors) DeleteUser(ctx context.Context, id string) error {
	return remove(ctx, a.client, UsersPath, id)
}

// FetchCurrentUser returns the user the session token belongs to
func (a *Accessors) FetchCurrentUser(ctx context.Context) (*entities.User, error) {
	out := new(entities.User)
	if err := a.client.Request(ctx, CurrentUserPath, wardapi.RequestOptions{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/zatekoja/wardcall/internal/domain/repositories"
	"github.com/zatekoja/wardcall/internal/infrastructure/clients/wardapi"
	apperrors "github.com/zatekoja/wardcall/pkg/errors"
)

// Collection paths, relative to the API base URL
const (
	HospitalsPath       = "hospitals/"
	BuildingsPath       = "buildings/"
	FloorsPath          = "floors/"
	WardsPath           = "wards/"
	BedsPath            = "beds/"
	DevicesPath         = "devices/"
	StaffTeamsPath      = "staff-teams/"
	NursesPath          = "nurses/"
	TeamAssignmentsPath = "team-assignments/"
	CallsPath           = "calls/"
	PatientsPath        = "patients/"
	UsersPath           = "users/"
	CurrentUserPath     = "users/me/"
)

// Accessors implements the admin accessor set on top of the API client.
// Every method is a single request: no caching, no retries.
type Accessors struct {
	client wardapi.Requester
}

// NewAccessors creates the accessor set
func NewAccessors(client wardapi.Requester) *Accessors {
	return &Accessors{client: client}
}

var _ repositories.AdminAPI = (*Accessors)(nil)

// ItemPath returns the path of one resource inside collection
func ItemPath(collection, id string) string {
	return collection + url.PathEscape(id) + "/"
}

func itemPath(collection, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", apperrors.NewValidationError(strings.TrimSuffix(collection, "/") + ": id is required")
	}
	return ItemPath(collection, id), nil
}

func list[T any](ctx context.Context, c wardapi.Requester, collection string) ([]T, error) {
	var out []T
	if err := c.Request(ctx, collection, wardapi.RequestOptions{Method: http.MethodGet}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func get[T any](ctx context.Context, c wardapi.Requester, collection, id string) (*T, error) {
	path, err := itemPath(collection, id)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := c.Request(ctx, path, wardapi.RequestOptions{Method: http.MethodGet}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func create[T any](ctx context.Context, c wardapi.Requester, collection string, input interface{}) (*T, error) {
	out := new(T)
	if err := c.Request(ctx, collection, wardapi.RequestOptions{Method: http.MethodPost, Body: input}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func update[T any](ctx context.Context, c wardapi.Requester, collection, id string, input interface{}) (*T, error) {
	path, err := itemPath(collection, id)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := c.Request(ctx, path, wardapi.RequestOptions{Method: http.MethodPatch, Body: input}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func remove(ctx context.Context, c wardapi.Requester, collection, id string) error {
	path, err := itemPath(collection, id)
	if err != nil {
		return err
	}
	return c.Request(ctx, path, wardapi.RequestOptions{Method: http.MethodDelete}, nil)
}

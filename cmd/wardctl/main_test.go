package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/wardcall/internal/domain/entities"
	apperrors "github.com/zatekoja/wardcall/pkg/errors"
)

// backendStub answers the login endpoint and a single wards collection
func backendStub(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, r.Method+" "+r.URL.Path+" "+strings.TrimSpace(string(body)))
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/api/auth/login/" {
			w.Write([]byte(`{"access":"tok123","refresh":"r1","username":"matron"}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method + " " + r.URL.Path {
		case "GET /api/wards/":
			w.Write([]byte(`[{"id":"w1","name":"ICU-A","floor":"f1","building":"b1"}]`))
		case "POST /api/wards/":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"w2","name":"HDU","floor":"f1","building":"b1"}`))
		case "DELETE /api/wards/w1/":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not found."}`))
		}
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func setupEnv(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("API_BASE_URL", baseURL)
	t.Setenv("SESSION_BACKEND", "file")
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("NOTIFY_REDIS", "false")
	t.Setenv("OTEL_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWardctl_LoginThenListUsesStoredSession(t *testing.T) {
	server, calls := backendStub(t)
	setupEnv(t, server.URL+"/api")

	out, err := run(t, "login", "--username", "matron", "--password", "pw")
	require.NoError(t, err)
	assert.Equal(t, "signed in as matron\n", out)

	out, err = run(t, "list", "wards")
	require.NoError(t, err)

	var wards []entities.Ward
	require.NoError(t, json.Unmarshal([]byte(out), &wards))
	assert.Equal(t, []entities.Ward{{ID: "w1", Name: "ICU-A", Floor: "f1", Building: "b1"}}, wards)
	assert.Equal(t, "GET /api/wards/ ", (*calls)[1])
}

func TestWardctl_CreateAndDelete(t *testing.T) {
	server, calls := backendStub(t)
	setupEnv(t, server.URL+"/api")
	_, err := run(t, "login", "--username", "matron", "--password", "pw")
	require.NoError(t, err)

	out, err := run(t, "create", "wards", "--data", `{"name":"HDU","floor":"f1"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "w2"`)
	assert.Equal(t, `POST /api/wards/ {"name":"HDU","floor":"f1"}`, (*calls)[1])

	out, err = run(t, "delete", "wards", "w1")
	require.NoError(t, err)
	assert.Equal(t, "deleted wards w1\n", out)
}

func TestWardctl_ListWithoutLoginMakesNoRequest(t *testing.T) {
	server, calls := backendStub(t)
	setupEnv(t, server.URL+"/api")

	_, err := run(t, "list", "wards")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthenticated))
	assert.Empty(t, *calls)
}

func TestWardctl_LogoutForgetsSession(t *testing.T) {
	server, calls := backendStub(t)
	setupEnv(t, server.URL+"/api")
	_, err := run(t, "login", "--username", "matron", "--password", "pw")
	require.NoError(t, err)

	_, err = run(t, "logout")
	require.NoError(t, err)

	_, err = run(t, "list", "wards")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthenticated))
	assert.Len(t, *calls, 1)
}

func TestWardctl_UnknownResource(t *testing.T) {
	server, calls := backendStub(t)
	setupEnv(t, server.URL+"/api")

	_, err := run(t, "list", "rooms")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Empty(t, *calls)
}

func TestWardctl_ResourcesNeedsNoConfig(t *testing.T) {
	t.Setenv("API_BASE_URL", "not a url")

	out, err := run(t, "resources")

	require.NoError(t, err)
	assert.Equal(t, strings.Join(resourceNames(), "\n")+"\n", out)
	assert.Len(t, resourceNames(), 12)
}

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    entities.BedInput
		wantErr bool
	}{
		{
			name: "partial",
			data: `{"number":"12B"}`,
			want: entities.BedInput{Number: entities.Ptr("12B")},
		},
		{
			name: "explicit empty nurse list",
			data: `{"nurses":[]}`,
			want: entities.BedInput{Nurses: entities.Ptr([]string{})},
		},
		{name: "unknown field", data: `{"numbr":"12B"}`, wantErr: true},
		{name: "empty", data: "  ", wantErr: true},
		{name: "malformed", data: `{"number":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeInput[entities.BedInput]([]byte(tt.data))
			if tt.wantErr {
				assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

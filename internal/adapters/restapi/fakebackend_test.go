package restapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// fakeBackend is an in-memory stand-in for the admin API. Collections are
// keyed by their path ("wards/") and hold raw JSON objects by id.
type fakeBackend struct {
	t      *testing.T
	token  string
	server *httptest.Server

	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
	order       map[string][]string
	requests    []recordedRequest
	currentUser map[string]interface{}
}

func newFakeBackend(t *testing.T, token string) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		t:           t,
		token:       token,
		collections: make(map[string]map[string]map[string]interface{}),
		order:       make(map[string][]string),
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) URL() string {
	return b.server.URL + "/api"
}

// seed stores a JSON object in collection under its "id" field
func (b *fakeBackend) seed(collection, raw string) {
	b.t.Helper()
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		b.t.Fatalf("invalid seed %s: %v", raw, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.put(collection, obj["id"].(string), obj)
}

func (b *fakeBackend) put(collection, id string, obj map[string]interface{}) {
	if b.collections[collection] == nil {
		b.collections[collection] = make(map[string]map[string]interface{})
	}
	if _, exists := b.collections[collection][id]; !exists {
		b.order[collection] = append(b.order[collection], id)
	}
	b.collections[collection][id] = obj
}

func (b *fakeBackend) Requests() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]recordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

func (b *fakeBackend) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	defer b.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/")
	b.requests = append(b.requests, recordedRequest{Method: r.Method, Path: path, Body: string(body)})

	if r.Header.Get("Authorization") != "Bearer "+b.token {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Given token not valid for any token type"}`))
		return
	}

	if path == CurrentUserPath {
		writeJSON(w, http.StatusOK, b.currentUser)
		return
	}

	parts := strings.Split(strings.TrimSuffix(path, "/"), "/")
	collection := parts[0] + "/"

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		items := make([]map[string]interface{}, 0)
		for _, id := range b.order[collection] {
			if obj, ok := b.collections[collection][id]; ok {
				items = append(items, obj)
			}
		}
		writeJSON(w, http.StatusOK, items)

	case len(parts) == 1 && r.Method == http.MethodPost:
		var obj map[string]interface{}
		if err := json.Unmarshal(body, &obj); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
			return
		}
		id := uuid.NewString()
		obj["id"] = id
		b.put(collection, id, obj)
		writeJSON(w, http.StatusCreated, obj)

	case len(parts) == 2:
		id := parts[1]
		obj, ok := b.collections[collection][id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not found."}`))
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, obj)
		case http.MethodPatch:
			var patch map[string]interface{}
			if err := json.Unmarshal(body, &patch); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid json"})
				return
			}
			merged := make(map[string]interface{}, len(obj))
			for k, v := range obj {
				merged[k] = v
			}
			for k, v := range patch {
				merged[k] = v
			}
			b.collections[collection][id] = merged
			writeJSON(w, http.StatusOK, merged)
		case http.MethodDelete:
			delete(b.collections[collection], id)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

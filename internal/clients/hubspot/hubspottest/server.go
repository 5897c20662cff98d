// Package hubspottest provides an in-memory HubSpot API for tests.
package hubspottest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Call is one request received by the fake server.
type Call struct {
	Method string
	Path   string
	Body   map[string]any
}

// Association is a recorded default association.
type Association struct {
	FromType string
	FromID   string
	ToType   string
	ToID     string
}

// Server emulates the subset of the HubSpot CRM API used by voice-crm.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	nextID       int
	objects      map[string]map[string]map[string]any // type -> id -> properties
	associations []Association
	calls        []Call
	failures     map[string]int // "METHOD path-prefix" -> status
	token        string
}

// NewServer starts a fake HubSpot server that expects the given bearer token.
func NewServer(token string) *Server {
	s := &Server{
		nextID:   100,
		objects:  map[string]map[string]map[string]any{},
		failures: map[string]int{},
		token:    token,
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// SeedContact stores a contact and returns its id.
func (s *Server) SeedContact(properties map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store("contacts", properties)
}

// FailWith makes every request whose "METHOD /path" starts with prefix fail with status.
func (s *Server) FailWith(prefix string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[prefix] = status
}

// Calls returns a copy of all recorded calls.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CountCalls counts calls with the given method and exact path.
func (s *Server) CountCalls(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// CountCallsWithPrefix counts calls with the given method whose path starts with prefix.
func (s *Server) CountCallsWithPrefix(method, prefix string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && strings.HasPrefix(c.Path, prefix) {
			n++
		}
	}
	return n
}

// Associations returns a copy of all recorded associations.
func (s *Server) Associations() []Association {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Association, len(s.associations))
	copy(out, s.associations)
	return out
}

// Object returns the stored properties of an object.
func (s *Server) Object(objectType, id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	props, ok := s.objects[objectType][id]
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out, true
}

// Count returns how many objects of a type exist.
func (s *Server) Count(objectType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects[objectType])
}

func (s *Server) store(objectType string, properties map[string]any) string {
	s.nextID++
	id := fmt.Sprintf("%d", s.nextID)
	if s.objects[objectType] == nil {
		s.objects[objectType] = map[string]map[string]any{}
	}
	props := make(map[string]any, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	s.objects[objectType][id] = props
	return id
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Body: body})

	if r.Header.Get("Authorization") != "Bearer "+s.token {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"status": "error", "message": "authentication credentials not found"})
		return
	}
	for prefix, status := range s.failures {
		if strings.HasPrefix(r.Method+" "+r.URL.Path, prefix) {
			writeJSON(w, status, map[string]any{"status": "error", "message": "injected failure"})
			return
		}
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/crm/v3/objects/contacts/search":
		s.search(w, body)
	case r.Method == http.MethodPost && len(parts) == 4 && parts[0] == "crm" && parts[1] == "v3":
		props, _ := body["properties"].(map[string]any)
		id := s.store(parts[3], props)
		writeJSON(w, http.StatusCreated, map[string]any{"id": id, "properties": props})
	case r.Method == http.MethodPatch && len(parts) == 5 && parts[3] == "contacts":
		existing, ok := s.objects["contacts"][parts[4]]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"status": "error", "message": "resource not found"})
			return
		}
		props, _ := body["properties"].(map[string]any)
		for k, v := range props {
			existing[k] = v
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": parts[4], "properties": existing})
	case r.Method == http.MethodPut && len(parts) == 9 && parts[1] == "v4" && parts[5] == "associations" && parts[6] == "default":
		s.associations = append(s.associations, Association{
			FromType: parts[3], FromID: parts[4], ToType: parts[7], ToID: parts[8],
		})
		writeJSON(w, http.StatusOK, map[string]any{"status": "COMPLETE"})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"status": "error", "message": "unknown route"})
	}
}

func (s *Server) search(w http.ResponseWriter, body map[string]any) {
	email := ""
	if groups, ok := body["filterGroups"].([]any); ok && len(groups) > 0 {
		if g, ok := groups[0].(map[string]any); ok {
			if filters, ok := g["filters"].([]any); ok && len(filters) > 0 {
				if f, ok := filters[0].(map[string]any); ok {
					email, _ = f["value"].(string)
				}
			}
		}
	}

	results := []map[string]any{}
	for id, props := range s.objects["contacts"] {
		if v, _ := props["email"].(string); strings.EqualFold(v, email) {
			results = append(results, map[string]any{"id": id, "properties": props})
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": len(results), "results": results})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package mockstore serves an in-memory subset of the PostgREST surface
// the store client relies on: a customers collection with 'email=eq.'
// filtering, representation echoes on mutations and unique-email
// enforcement. It backs the store tests and doubles as a local
// development data service via cmd/mockstore.
package mockstore

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/baalimago/dbai/internal/store"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mu        sync.Mutex
	nextID    int
	customers []store.Customer
	router    chi.Router
}

func New() *Server {
	s := &Server{nextID: 1}
	r := chi.NewRouter()
	r.Get("/customers", s.get)
	r.Post("/customers", s.post)
	r.Patch("/customers", s.patch)
	r.Delete("/customers", s.delete)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Seed inserts customers without uniqueness checks. Primarily for tests.
func (s *Server) Seed(customers ...store.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range customers {
		c.ID = s.nextID
		s.nextID++
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now()
		}
		s.customers = append(s.customers, c)
	}
}

// emailFilter parses PostgREST style '?email=eq.<email>' query params
func emailFilter(r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("email")
	if !strings.HasPrefix(raw, "eq.") {
		return "", false
	}
	return strings.TrimPrefix(raw, "eq."), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) matching(r *http.Request) []store.Customer {
	matches := make([]store.Customer, 0)
	email, filtered := emailFilter(r)
	for _, c := range s.customers {
		if !filtered || c.Email == email {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.matching(r))
}

func (s *Server) post(w http.ResponseWriter, r *http.Request) {
	var c store.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.customers {
		if existing.Email == c.Email {
			// Same shape as a postgres unique constraint violation
			writeJSON(w, http.StatusConflict, map[string]string{
				"code":    "23505",
				"message": "duplicate key value violates unique constraint \"customers_email_key\"",
			})
			return
		}
	}
	c.ID = s.nextID
	s.nextID++
	c.CreatedAt = time.Now()
	s.customers = append(s.customers, c)
	writeJSON(w, http.StatusCreated, []store.Customer{c})
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email, _ := emailFilter(r)
	updated := make([]store.Customer, 0)
	for i, c := range s.customers {
		if c.Email != email {
			continue
		}
		if v, ok := fields["full_name"]; ok {
			c.FullName = v
		}
		if v, ok := fields["bio"]; ok {
			c.Bio = v
		}
		s.customers[i] = c
		updated = append(updated, c)
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, _ := emailFilter(r)
	removed := make([]store.Customer, 0)
	kept := s.customers[:0]
	for _, c := range s.customers {
		if c.Email == email {
			removed = append(removed, c)
		} else {
			kept = append(kept, c)
		}
	}
	s.customers = kept
	writeJSON(w, http.StatusOK, removed)
}

package telemetry

import (
	"encoding/json"
	"net/http"

	"mayday/internal/game/simulation"

	"github.com/go-chi/chi/v5"
	"github.com/labstack/gommon/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Source provides read-only snapshots of a running simulation.
type Source interface {
	Snapshot() simulation.Snapshot
}

type Server struct {
	source Source
	lg     *log.Logger
}

// New constructs the HTTP router exposing snapshots of source.
func New(source Source, lg *log.Logger) http.Handler {
	s := &Server{source: source, lg: lg}
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			s.lg.Errorf("writing health: %v", err)
		}
	})

	r.Get("/snapshot", s.handleSnapshot)
	r.Get("/snapshot.msgpack", s.handleSnapshotMsgpack)
	r.Get("/aircraft/{id}", s.handleAircraft)

	return r
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.source.Snapshot()); err != nil {
		s.lg.Errorf("encoding snapshot: %v", err)
	}
}

func (s *Server) handleSnapshotMsgpack(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/msgpack")
	if err := msgpack.NewEncoder(w).Encode(s.source.Snapshot()); err != nil {
		s.lg.Errorf("encoding snapshot: %v", err)
	}
}

func (s *Server) handleAircraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, ac := range s.source.Snapshot().Aircraft {
		if string(ac.ID) == id {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(ac); err != nil {
				s.lg.Errorf("encoding aircraft %s: %v", id, err)
			}
			return
		}
	}
	http.Error(w, "aircraft "+id+" not found", http.StatusNotFound)
}

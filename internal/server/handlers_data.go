package server

import (
	"log"
	"net/http"

	"github.com/jonathan/portfolio-site/internal/content"
)

// handleData serves a collection document byte-for-byte as authored.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	name, err := content.ParseName(r.PathValue("type"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid data type")
		return
	}

	data, err := s.store.Load(r.Context(), name)
	if err != nil {
		s.loadFailed(w, name, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing data response: %s: %v", name, err)
	}
}

// loadFailed logs the underlying cause and answers with a generic 500.
// The client never sees paths or parser output.
func (s *Server) loadFailed(w http.ResponseWriter, name content.Name, err error) {
	log.Printf("Error reading data: %s: %v", name, err)
	s.errorResponse(w, http.StatusInternalServerError, "Failed to load data")
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/portfolio-site/internal/contact"
	"github.com/jonathan/portfolio-site/internal/types"
)

const maxContactBody = 64 << 10

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	var form types.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := s.submitter.Submit(r.Context(), &form)
	if err != nil {
		var se *contact.SubmissionError
		if errors.As(err, &se) {
			s.errorResponse(w, HTTPStatus(err), "Failed to send message")
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, receipt)
}

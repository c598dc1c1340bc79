package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/portfolio-site/internal/contact"
	"github.com/jonathan/portfolio-site/internal/content"
	"github.com/jonathan/portfolio-site/internal/section"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound      *content.NotFoundError
		formInvalid   *contact.ValidationError
		unknownTab    *section.UnknownTabError
		unknownItem   *section.UnknownItemError
		submitFailure *contact.SubmissionError
	)

	switch {
	case errors.As(err, &notFound), errors.As(err, &formInvalid), errors.As(err, &unknownTab):
		return http.StatusBadRequest
	case errors.As(err, &unknownItem):
		return http.StatusNotFound
	case errors.As(err, &submitFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

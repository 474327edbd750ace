package http

import (
	"errors"

	"sidecar-srv/internal/rerank"
	pkgErrors "sidecar-srv/pkg/errors"
)

var (
	errEmptyQuery = pkgErrors.NewHTTPError(
		400, "query must not be empty",
	)
	errInferenceFailed = pkgErrors.NewHTTPError(
		500, "Rerank inference failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, rerank.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, rerank.ErrInferenceFailed),
		errors.Is(err, rerank.ErrMismatchScoreCount):
		return errInferenceFailed
	default:
		return errInferenceFailed
	}
}

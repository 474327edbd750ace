package http

import (
	"errors"

	"sidecar-srv/internal/extraction"
	pkgErrors "sidecar-srv/pkg/errors"
)

var (
	errEmptyChunks = pkgErrors.NewHTTPError(
		400, "chunks must contain at least one item",
	)
	errInferenceFailed = pkgErrors.NewHTTPError(
		500, "Entity extraction inference failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrEmptyChunks):
		return errEmptyChunks
	case errors.Is(err, extraction.ErrInferenceFailed):
		return errInferenceFailed
	default:
		return errInferenceFailed
	}
}

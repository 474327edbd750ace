package http

import (
	"errors"

	"sidecar-srv/internal/embedding"
	pkgErrors "sidecar-srv/pkg/errors"
)

var (
	errEmptyTexts = pkgErrors.NewHTTPError(
		400, "texts must contain at least one item",
	)
	errInferenceFailed = pkgErrors.NewHTTPError(
		500, "Embedding inference failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, embedding.ErrEmptyTexts):
		return errEmptyTexts
	case errors.Is(err, embedding.ErrInferenceFailed),
		errors.Is(err, embedding.ErrMismatchVectorCount):
		return errInferenceFailed
	default:
		return errInferenceFailed
	}
}

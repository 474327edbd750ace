package usecase

import (
	"sidecar-srv/internal/extraction"
	"sidecar-srv/pkg/log"
)

type implUseCase struct {
	tagger extraction.Tagger
	l      log.Logger
}

func New(tagger extraction.Tagger, l log.Logger) extraction.UseCase {
	return &implUseCase{
		tagger: tagger,
		l:      l,
	}
}

package usecase

import (
	"sidecar-srv/internal/rerank"
	"sidecar-srv/pkg/log"
)

type implUseCase struct {
	scorer rerank.Scorer
	l      log.Logger
}

func New(scorer rerank.Scorer, l log.Logger) rerank.UseCase {
	return &implUseCase{
		scorer: scorer,
		l:      l,
	}
}

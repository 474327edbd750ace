package usecase

import (
	"sidecar-srv/internal/embedding"
	"sidecar-srv/pkg/log"
)

type implUseCase struct {
	encoder embedding.Encoder
	l       log.Logger
}

func New(encoder embedding.Encoder, l log.Logger) embedding.UseCase {
	return &implUseCase{
		encoder: encoder,
		l:       l,
	}
}

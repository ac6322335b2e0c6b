package creator

import (
	"github.com/opusline/royaltyd/internal/creator/repository"
	"github.com/opusline/royaltyd/internal/creator/service"
	"go.uber.org/fx"
)

var Module = fx.Module("creator.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

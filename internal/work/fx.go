package work

import (
	"github.com/opusline/royaltyd/internal/work/repository"
	"github.com/opusline/royaltyd/internal/work/service"
	"go.uber.org/fx"
)

var Module = fx.Module("work.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

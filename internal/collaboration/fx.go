package collaboration

import (
	"github.com/opusline/royaltyd/internal/collaboration/repository"
	"github.com/opusline/royaltyd/internal/collaboration/service"
	"go.uber.org/fx"
)

var Module = fx.Module("collaboration.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideBindings),
	fx.Provide(service.New),
)

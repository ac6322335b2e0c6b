package representative

import (
	"github.com/opusline/royaltyd/internal/representative/repository"
	"github.com/opusline/royaltyd/internal/representative/service"
	"go.uber.org/fx"
)

var Module = fx.Module("representative.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package ledger

import (
	"github.com/opusline/royaltyd/internal/ledger/repository"
	"github.com/opusline/royaltyd/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)

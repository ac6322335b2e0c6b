package transaction

import (
	"github.com/opusline/royaltyd/internal/transaction/repository"
	"github.com/opusline/royaltyd/internal/transaction/service"
	"go.uber.org/fx"
)

var Module = fx.Module("transaction.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)

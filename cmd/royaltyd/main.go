package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/collaboration"
	"github.com/opusline/royaltyd/internal/config"
	"github.com/opusline/royaltyd/internal/creator"
	"github.com/opusline/royaltyd/internal/ledger"
	"github.com/opusline/royaltyd/internal/logger"
	"github.com/opusline/royaltyd/internal/migration"
	"github.com/opusline/royaltyd/internal/notification"
	"github.com/opusline/royaltyd/internal/observability/metrics"
	"github.com/opusline/royaltyd/internal/representative"
	"github.com/opusline/royaltyd/internal/server"
	"github.com/opusline/royaltyd/internal/transaction"
	"github.com/opusline/royaltyd/internal/work"
	"github.com/opusline/royaltyd/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		metrics.Module,
		notification.Module,

		creator.Module,
		representative.Module,
		work.Module,
		ledger.Module,
		collaboration.Module,
		transaction.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

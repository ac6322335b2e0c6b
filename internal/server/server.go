package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	collaborationdomain "github.com/opusline/royaltyd/internal/collaboration/domain"
	"github.com/opusline/royaltyd/internal/config"
	creatordomain "github.com/opusline/royaltyd/internal/creator/domain"
	ledgerdomain "github.com/opusline/royaltyd/internal/ledger/domain"
	repdomain "github.com/opusline/royaltyd/internal/representative/domain"
	transactiondomain "github.com/opusline/royaltyd/internal/transaction/domain"
	workdomain "github.com/opusline/royaltyd/internal/work/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	engine            *gin.Engine
	cfg               config.Config
	log               *zap.Logger
	creatorSvc        creatordomain.Service
	representativeSvc repdomain.Service
	workSvc           workdomain.Service
	ledgerSvc         ledgerdomain.Service
	transactionSvc    transactiondomain.Service
	collaborationSvc  collaborationdomain.Service
}

type Params struct {
	fx.In

	Gin               *gin.Engine
	Cfg               config.Config
	Log               *zap.Logger
	CreatorSvc        creatordomain.Service
	RepresentativeSvc repdomain.Service
	WorkSvc           workdomain.Service
	LedgerSvc         ledgerdomain.Service
	TransactionSvc    transactiondomain.Service
	CollaborationSvc  collaborationdomain.Service
}

func NewServer(p Params) *Server {
	s := &Server{
		engine:            p.Gin,
		cfg:               p.Cfg,
		log:               p.Log.Named("server"),
		creatorSvc:        p.CreatorSvc,
		representativeSvc: p.RepresentativeSvc,
		workSvc:           p.WorkSvc,
		ledgerSvc:         p.LedgerSvc,
		transactionSvc:    p.TransactionSvc,
		collaborationSvc:  p.CollaborationSvc,
	}
	s.RegisterRoutes()
	return s
}

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLoggingMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func (s *Server) RegisterRoutes() {
	v1 := s.engine.Group("/v1")

	v1.POST("/creators", s.CreateCreator)
	v1.GET("/creators/:id", s.GetCreator)
	v1.GET("/creators/:id/ledgers", s.GetLedgersByCreator)
	v1.GET("/creators/:id/works", s.ListWorksByCreator)
	v1.GET("/creators/:id/transactions", s.ListTransactionsByCreator)

	v1.POST("/representatives", s.CreateRepresentative)
	v1.GET("/representatives/:id", s.GetRepresentative)
	v1.GET("/representatives/:id/creators", s.ListManagedCreators)

	v1.POST("/works", s.CreateWork)
	v1.GET("/works/:id", s.GetWork)
	v1.POST("/works/:id/usage", s.RecordUsage)

	v1.POST("/ledgers", s.RegisterWorkLedger)
	v1.POST("/ledgers/sync", s.SyncLedgerFromWork)

	v1.POST("/transactions", s.CreateTransaction)
	v1.POST("/transactions/:id/payments", s.PayTransaction)
	v1.DELETE("/transactions/:id", s.DeleteTransaction)

	v1.POST("/collaborations", s.RequestCollaboration)
	v1.POST("/collaborations/:id/response", s.RespondCollaboration)
	v1.POST("/collaborations/:id/cancellation", s.RequestCancellation)
	v1.POST("/collaborations/:id/cancellation/response", s.RespondCancellation)
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
	fx.Invoke(RunHTTP),
)

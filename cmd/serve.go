package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"seoaudit/internal/analysis"
	"seoaudit/internal/api"
	"seoaudit/internal/api/handler/v1handler"
	"seoaudit/internal/config"
	"seoaudit/internal/crawl"
	"seoaudit/internal/orchestrator"
	"seoaudit/internal/tasks"
	"seoaudit/internal/worker"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/research/httpapi"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"riverqueue.com/riverui"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	deps v1handler.Deps,
	riverClient *river.Client[pgx.Tx]) func(ctx context.Context) {
	queueUI, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(riverClient, nil),
		Logger:    logger.Slog(ctx),
		Prefix:    api.QueueUIPrefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create queue dashboard", zap.Error(err))
	}
	if err = queueUI.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start queue dashboard", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{Deps: deps, QueueUI: queueUI}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()
			var publisher *notify.Publisher
			if redisClient != nil {
				publisher = notify.New(redisClient, cfg.Redis.ChannelPrefix)
			}

			fetcher, closeFetcher := getFetcher(ctx, cfg)
			defer closeFetcher()
			crawler := crawl.New(strg, fetcher, analysis.New(strg), publisher, crawl.NewOptions(cfg))

			orch := orchestrator.New(strg, publisher, orchestrator.NewOptions(cfg))
			taskDeps := tasks.Deps{
				Crawls:          crawler,
				Fetcher:         fetcher,
				BacklinkRate:    cfg.Research.BacklinkRate,
				ItemDeadline:    cfg.Jobs.ItemDeadline,
				ExternalLinkCap: cfg.Crawler.ExternalLinkCap,
			}
			if cfg.Research.APIKey != "" {
				vendor := httpapi.New(&http.Client{Timeout: cfg.Research.Timeout}, cfg.Research.BaseURL, cfg.Research.APIKey)
				taskDeps.Keywords, taskDeps.Backlinks, taskDeps.SERP = vendor, vendor, vendor
			} else {
				logger.Warn(ctx, "research vendor is not configured, research job types are disabled")
			}
			tasks.Register(orch, taskDeps)

			riverClient, err := worker.Start(ctx, strg.Pool, crawler, orch, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			deps := v1handler.Deps{Crawler: crawler, Jobs: orch}
			if publisher != nil {
				deps.Events = publisher
			}
			stopWebserver := setupServer(ctx, cfg, deps, riverClient)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}

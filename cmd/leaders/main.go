package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jenyar623-ui/ascorp-leaders/internal/config"
	"github.com/jenyar623-ui/ascorp-leaders/internal/service/dashboard"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath string
		interval   time.Duration
	)

	root := &cobra.Command{
		Use:          "leaders",
		Short:        "Сборщик дашборда по командам и клиентам",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "./config/local.yaml", "путь к yaml-конфигурации")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Разовая сборка JSON и страницы",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustConfig(configPath)
			log := setupLogger(cfg.Env)
			return dashboard.NewBuilder(log, *cfg).Build(cmd.Context())
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Пересборка при изменении исходных книг",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustConfig(configPath)
			if interval > 0 {
				cfg.WatchInterval = interval
			}
			log := setupLogger(cfg.Env)
			builder := dashboard.NewBuilder(log, *cfg)
			return runUntilSignal(log, func(ctx context.Context) error {
				return dashboard.NewWatcher(log, builder, cfg.WatchInterval).Run(ctx)
			})
		},
	}
	watchCmd.Flags().DurationVarP(&interval, "interval", "i", 0, "интервал проверки (перекрывает конфиг)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Наблюдение плюс HTTP-сервер дашборда",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustConfig(configPath)
			if interval > 0 {
				cfg.WatchInterval = interval
			}
			log := setupLogger(cfg.Env)
			builder := dashboard.NewBuilder(log, *cfg)

			srv := &http.Server{
				Addr:         cfg.Address,
				Handler:      routes(*cfg, log, builder),
				ReadTimeout:  cfg.HTTPServer.Timeout,
				WriteTimeout: cfg.HTTPServer.Timeout,
				IdleTimeout:  cfg.HTTPServer.IdleTimeout,
			}

			return runUntilSignal(log, func(ctx context.Context) error {
				g, ctx := errgroup.WithContext(ctx)
				g.Go(func() error {
					return dashboard.NewWatcher(log, builder, cfg.WatchInterval).Run(ctx)
				})
				g.Go(func() error {
					log.Info("server started", slog.String("address", cfg.Address))
					err := srv.ListenAndServe()
					if err == http.ErrServerClosed {
						return nil
					}
					return err
				})
				g.Go(func() error {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					return srv.Shutdown(shutdownCtx)
				})
				return g.Wait()
			})
		},
	}
	serveCmd.Flags().DurationVarP(&interval, "interval", "i", 0, "интервал проверки (перекрывает конфиг)")

	root.AddCommand(buildCmd, watchCmd, serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runUntilSignal крутит fn до SIGINT/SIGTERM; остановка по сигналу —
// штатный выход.
func runUntilSignal(log *slog.Logger, fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := fn(ctx)
	if err == context.Canceled {
		log.Info("остановлено по сигналу")
		return nil
	}
	return err
}

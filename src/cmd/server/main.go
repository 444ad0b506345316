package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ce-fello/relief-hub/src/internal/api"
	"github.com/ce-fello/relief-hub/src/internal/config"
	"github.com/ce-fello/relief-hub/src/internal/logging"
	"github.com/ce-fello/relief-hub/src/internal/service"
	"github.com/ce-fello/relief-hub/src/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds what every command needs once the store is open.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	kv     store.KV
	svc    *service.Service
}

var (
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "relief-hub",
		Short: "Relief Hub - disaster relief coordination server",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (takes precedence over RELIEF_CONFIG)")

	rootCmd.AddCommand(serveCmd(), dumpCmd(), resetCmd())

	if err := run(rootCmd); err != nil {
		os.Exit(1)
	}
}

// run executes the command tree and always releases the store and logger,
// including when a command fails.
func run(rootCmd *cobra.Command) error {
	defer closeApp()
	return rootCmd.Execute()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the stored requests and volunteers as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"requests":   app.svc.Requests(),
				"volunteers": app.svc.AllVolunteers(),
			})
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace stored requests and volunteers with the seed data",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.svc.Reset(cmd.Context())
			app.logger.Info("state reset to seed data")
			return nil
		},
	}
}

func initApp(ctx context.Context) error {
	path := configPath
	if path == "" {
		path = os.Getenv("RELIEF_CONFIG")
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	kv, err := store.Open(ctx, store.Options{
		Backend:         cfg.Store.Backend,
		SQLitePath:      cfg.Store.SQLitePath,
		PostgresDSN:     cfg.Store.PostgresDSN,
		ConnectAttempts: cfg.Store.ConnectAttempts,
		ConnectDelay:    cfg.Store.ConnectDelay,
		RedisAddr:       cfg.Store.RedisAddr,
		RedisPassword:   cfg.Store.RedisPassword,
		RedisDB:         cfg.Store.RedisDB,
		RedisPrefix:     cfg.Store.RedisPrefix,
	}, logger)
	if err != nil {
		logger.Error("failed to open store", zap.Error(err))
		return err
	}

	svc := service.NewService(kv, logger)
	svc.Load(ctx)

	app = &App{cfg: cfg, logger: logger, kv: kv, svc: svc}
	return nil
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.kv.Close(); err != nil {
		app.logger.Warn("failed to close store", zap.Error(err))
	}
	_ = app.logger.Sync()
}

func serve() error {
	sugar := app.logger.Sugar()
	h := api.NewHandler(app.svc, app.logger, app.cfg.Server.RequestTimeout)

	r := chi.NewRouter()
	r.Use(api.RequestIDMiddleware, api.LoggerMiddleware(app.logger), api.Recoverer(app.logger))
	api.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:         ":" + app.cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		sugar.Errorf("server error: %v", err)
		return err
	case <-quit:
	}
	sugar.Infof("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorf("server forced to shutdown: %v", err)
		return err
	}
	sugar.Info("server stopped")
	return nil
}

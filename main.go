package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "skyrio/internal/config"
	router "skyrio/internal/http"
	"skyrio/internal/repositories"
	"skyrio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	intconfig.LoadDotEnvUp(6)

	root := &cobra.Command{
		Use:           "skyrio",
		Short:         "Skyrio Atlas travel API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), airportsCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := intconfig.LoadEnv()
			logger, err := utils.NewLogger(env.IsLocal())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			return serve(cmd.Context(), env, logger)
		},
	}
}

func airportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "airports [query]",
		Short: "Search the airport catalog and print JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ""
			if len(args) == 1 {
				q = args[0]
			}
			catalog, err := loadCatalog(cmd.Context(), intconfig.LoadEnv())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.Search(q))
		},
	}
}

func serve(ctx context.Context, env intconfig.Env, logger *zap.Logger) error {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	} else if !env.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog, err := loadCatalog(ctx, env)
	if err != nil {
		return fmt.Errorf("load airports: %w", err)
	}
	logger.Info("airport catalog loaded", zap.Int("airports", catalog.Len()))

	deps := router.Deps{Airports: catalog, Logger: logger}
	if env.RedisAddr != "" && env.RateLimitRPS > 0 {
		rdb, err := intconfig.OpenRedis(ctx, env)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		deps.Redis = rdb
		logger.Info("rate limit enabled", zap.Int("rps", env.RateLimitRPS))
	}

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env, deps),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       env.ReadTimeout,
		WriteTimeout:      env.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Skyrio Atlas running", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// loadCatalog builds the airport catalog from MySQL when AIRPORTS_DSN is set,
// otherwise from AIRPORTS_FILE or the embedded fixture.
func loadCatalog(ctx context.Context, env intconfig.Env) (*repositories.AirportRepository, error) {
	if env.AirportsDSN == "" {
		list, err := repositories.LoadAirportsFile(env.AirportsFile)
		if err != nil {
			return nil, err
		}
		return repositories.NewAirportRepository(list)
	}

	conn, err := intconfig.OpenDB(ctx, env.AirportsDSN)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	list, err := repositories.LoadAirportsDB(loadCtx, conn)
	if err != nil {
		return nil, err
	}
	return repositories.NewAirportRepository(list)
}

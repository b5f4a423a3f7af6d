package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AstroBookings/api-system/internal/config"
	"github.com/AstroBookings/api-system/internal/handler"
	"github.com/AstroBookings/api-system/internal/pkg/ident"
	"github.com/AstroBookings/api-system/internal/pkg/token"
	"github.com/AstroBookings/api-system/internal/repo"
	"github.com/AstroBookings/api-system/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "user authentication api server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runServer(cfg, logger)
		},
	}

	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting server",
		zap.String("addr", cfg.Addr()),
		zap.String("user_store", cfg.UserStore),
		zap.Duration("jwt_ttl", cfg.JWTTTL),
	)

	users, err := openUserStore(cfg)
	if err != nil {
		return fmt.Errorf("open user store: %w", err)
	}

	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.JWTTTL)
	ids, err := ident.NewGenerator(cfg.NodeID)
	if err != nil {
		return fmt.Errorf("id generator: %w", err)
	}

	userService := service.NewUserService(users, tokens, ids, logger)
	authService := service.NewAuthService(users, logger)

	router := handler.NewRouter(handler.RouterDeps{
		Users:  handler.NewUserHandler(userService),
		Auth:   handler.NewAuthHandler(userService, authService),
		Tokens: tokens,
		APIKey: cfg.APIKey,
		Logger: logger,
	})

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func openUserStore(cfg *config.Config) (repo.UserRepository, error) {
	switch cfg.UserStore {
	case config.StoreMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return repo.NewMongoUserRepository(ctx, cfg.MongoURI, cfg.MongoDB)
	case config.StorePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return repo.OpenPostgres(ctx, cfg.PostgresDSN)
	default:
		return repo.NewMemoryUserRepository(), nil
	}
}

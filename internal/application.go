package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/kalah-backend/internal/config"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
	"github.com/rocketscienceinc/kalah-backend/internal/repository"
	"github.com/rocketscienceinc/kalah-backend/internal/repository/storage"
	"github.com/rocketscienceinc/kalah-backend/internal/usecase"
	"github.com/rocketscienceinc/kalah-backend/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRepo, closer, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closer.Close(); err != nil {
			log.Error("could not close storage", "storage", conf.Storage, "error", err)
		}
	}()

	engine, err := kalah.NewEngine(conf.Board.Kalah())
	if err != nil {
		return fmt.Errorf("could not create engine: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, gameRepo, engine)
	server := rest.New(logger, gameManager)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage,
		"pits_per_side", conf.Board.PitsPerSide, "stones_per_pit", conf.Board.StonesPerPit)

	if err = server.Start(ctx, conf.HTTPPort, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, io.Closer, error) {
	switch conf.Storage {
	case config.StoragePostgres:
		postgresStorage, err := storage.NewPostgresStorage(ctx, conf.Postgres.DSN, storage.PostgresOptions{
			MaxOpenConns:    conf.Postgres.MaxOpenConns,
			MaxIdleConns:    conf.Postgres.MaxIdleConns,
			ConnMaxLifetime: conf.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to postgres storage: %w", err)
		}

		if err = postgresStorage.Init(ctx); err != nil {
			postgresStorage.Close()
			return nil, nil, fmt.Errorf("could not init postgres storage: %w", err)
		}

		return repository.NewPostgresGameRepository(postgresStorage.Connection), postgresStorage, nil
	default:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage.Connection), redisStorage, nil
	}
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

type gameRepo interface {
	NextID(ctx context.Context) (int64, error)
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id int64) (*entity.Game, error)
}

// GameManager creates games, reports their status and plays moves.
// Moves on one game are serialized; different games run in parallel.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	engine   *kalah.Engine
	locks    *gameLocks
	now      func() time.Time
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, engine *kalah.Engine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		engine:   engine,
		locks:    newGameLocks(),
		now:      time.Now,
	}
}

func (that *GameManager) Create(ctx context.Context) (*entity.Game, error) {
	id, err := that.gameRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate game id: %w", err)
	}

	game := entity.NewGame(id, that.engine.NewGame(), that.now())
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", id)

	return game, nil
}

// Status - the stored game; never plays.
func (that *GameManager) Status(ctx context.Context, id int64) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// Play sows pitID for the player whose turn it is and stores the result.
func (that *GameManager) Play(ctx context.Context, id int64, pitID int) (*entity.Game, kalah.Outcome, error) {
	log := that.logger.With("method", "Play", "game_id", id, "pit", pitID)

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, kalah.Outcome{}, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, kalah.Outcome{}, err
	}

	board, err := game.Board()
	if err != nil {
		return nil, kalah.Outcome{}, err
	}

	result, outcome, err := that.engine.ApplyMove(board, game.Turn, pitID)
	if err != nil {
		log.Debug("move rejected", "turn", game.Turn, "error", err)
		return game, kalah.Outcome{}, fmt.Errorf("failed to make move: %w", err)
	}

	game.ApplyOutcome(result, outcome, that.now())

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, kalah.Outcome{}, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("move played", "outcome", outcome.Kind, "next", outcome.Next, "winner", outcome.Winner, "board", result.String())

	return game, outcome, nil
}

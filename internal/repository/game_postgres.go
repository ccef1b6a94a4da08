package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

type sqlGame struct {
	db *sql.DB
}

// NewPostgresGameRepository - games are stored as one row plus one row per pit.
func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &sqlGame{
		db: db,
	}
}

func (that *sqlGame) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := that.db.QueryRowContext(ctx, `SELECT nextval(pg_get_serial_sequence('games', 'id'))`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to allocate game id: %w", err)
	}

	return id, nil
}

func (that *sqlGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback() //nolint: errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
	INSERT INTO games (id, turn, winner, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id) DO UPDATE SET
		turn = EXCLUDED.turn,
		winner = EXCLUDED.winner,
		status = EXCLUDED.status,
		updated_at = EXCLUDED.updated_at`,
		game.ID, game.Turn.String(), game.Winner.String(), game.Status, game.CreatedAt, game.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO game_pits (game_id, idx, stones)
	VALUES ($1, $2, $3)
	ON CONFLICT (game_id, idx) DO UPDATE SET stones = EXCLUDED.stones`)
	if err != nil {
		return fmt.Errorf("failed to prepare pit upsert: %w", err)
	}
	defer stmt.Close()

	for i, stones := range game.Pits {
		if _, err = stmt.ExecContext(ctx, game.ID, i+1, stones); err != nil {
			return fmt.Errorf("failed to upsert pit %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}

	return nil
}

func (that *sqlGame) GetByID(ctx context.Context, id int64) (*entity.Game, error) {
	var (
		game         = entity.Game{ID: id}
		turn, winner string
	)

	err := that.db.QueryRowContext(ctx,
		`SELECT turn, winner, status, created_at, updated_at FROM games WHERE id = $1`, id).
		Scan(&turn, &winner, &game.Status, &game.CreatedAt, &game.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &entity.Game{}, apperror.ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.Turn, err = kalah.ParseTurn(turn); err != nil {
		return &entity.Game{}, fmt.Errorf("game %d turn: %w", id, err)
	}

	if game.Winner, err = kalah.ParseTurn(winner); err != nil {
		return &entity.Game{}, fmt.Errorf("game %d winner: %w", id, err)
	}

	rows, err := that.db.QueryContext(ctx, `SELECT stones FROM game_pits WHERE game_id = $1 ORDER BY idx`, id)
	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get pits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stones int
		if err = rows.Scan(&stones); err != nil {
			return &entity.Game{}, fmt.Errorf("failed to scan pit: %w", err)
		}
		game.Pits = append(game.Pits, stones)
	}

	if err = rows.Err(); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to read pits: %w", err)
	}

	return &game, nil
}

func (that *sqlGame) DeleteByID(ctx context.Context, id int64) error {
	res, err := that.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

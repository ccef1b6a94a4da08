package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/kalah-backend/internal/apperror"
	"github.com/rocketscienceinc/kalah-backend/internal/entity"
	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

type gameService interface {
	Create(ctx context.Context) (*entity.Game, error)
	Status(ctx context.Context, id int64) (*entity.Game, error)
	Play(ctx context.Context, id int64, pitID int) (*entity.Game, kalah.Outcome, error)
}

type GameHandler interface {
	Create(ctx echo.Context) error
	Status(ctx echo.Context) error
	Play(ctx echo.Context) error
}

type gameCreatedResponse struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}

type gameStatusResponse struct {
	ID      string             `json:"id"`
	URL     string             `json:"url"`
	Status  map[string]string  `json:"status"`
	State   string             `json:"state"`
	Turn    kalah.Turn         `json:"turn"`
	Winner  kalah.Turn         `json:"winner"`
	Outcome *kalah.OutcomeKind `json:"outcome,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandler struct {
	logger *slog.Logger
	games  gameService
}

func NewGameHandler(logger *slog.Logger, games gameService) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		games:  games,
	}
}

func (that *gameHandler) Create(ctx echo.Context) error {
	game, err := that.games.Create(ctx.Request().Context())
	if err != nil {
		return that.sendError(ctx, "Create", err)
	}

	return ctx.JSON(http.StatusCreated, gameCreatedResponse{
		ID:  strconv.FormatInt(game.ID, 10),
		URI: gameURL(ctx, game.ID),
	})
}

func (that *gameHandler) Status(ctx echo.Context) error {
	id, err := parseGameID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	game, err := that.games.Status(ctx.Request().Context(), id)
	if err != nil {
		return that.sendError(ctx, "Status", err)
	}

	return ctx.JSON(http.StatusOK, newStatusResponse(ctx, game, nil))
}

func (that *gameHandler) Play(ctx echo.Context) error {
	id, err := parseGameID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	pitID, err := strconv.Atoi(ctx.Param("pitId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid pit id %q", ctx.Param("pitId"))})
	}

	game, outcome, err := that.games.Play(ctx.Request().Context(), id, pitID)
	if err != nil {
		return that.sendError(ctx, "Play", err)
	}

	return ctx.JSON(http.StatusOK, newStatusResponse(ctx, game, &outcome.Kind))
}

// sendError - maps domain errors to status codes; the rest is logged as internal.
func (that *gameHandler) sendError(ctx echo.Context, method string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidStartPit):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrGameAlreadyFinished):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: apperror.ErrGameFinished.Error()})
	default:
		that.logger.Error("request failed", "method", method, "path", ctx.Request().URL.Path, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}

func parseGameID(ctx echo.Context) (int64, error) {
	raw := ctx.Param("gameId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid game id %q", raw)
	}

	return id, nil
}

func gameURL(ctx echo.Context, id int64) string {
	return fmt.Sprintf("%s://%s/games/%d", ctx.Scheme(), ctx.Request().Host, id)
}

func newStatusResponse(ctx echo.Context, game *entity.Game, outcome *kalah.OutcomeKind) gameStatusResponse {
	status := make(map[string]string, len(game.Pits))
	for i, stones := range game.Pits {
		status[strconv.Itoa(i+1)] = strconv.Itoa(stones)
	}

	return gameStatusResponse{
		ID:      strconv.FormatInt(game.ID, 10),
		URL:     gameURL(ctx, game.ID),
		Status:  status,
		State:   game.Status,
		Turn:    game.Turn,
		Winner:  game.Winner,
		Outcome: outcome,
	}
}

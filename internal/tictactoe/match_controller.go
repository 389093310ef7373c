package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-match/internal/config"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/service"
)

// Prompter - asks the human for decisions.
type Prompter interface {
	ChooseMove(ctx context.Context, player *entity.Player, available []int) (int, error)
	PlayAgain(ctx context.Context) (bool, error)
}

// Renderer - shows match progress to the human.
type Renderer interface {
	ShowWelcome()
	ShowBoard(board *entity.Board, human, bot *entity.Player)
	ShowInvalidChoice()
	ShowBotTurn(bot *entity.Player)
	ShowRoundResult(board *entity.Board, human, bot, winner *entity.Player)
	ShowScore(human, bot *entity.Player)
	ShowMatchResult(winner *entity.Player)
	ShowPlayAgain()
	ShowGoodbye()
}

type UI interface {
	Prompter
	Renderer
}

type botStrategy interface {
	Decide(board *entity.Board, own, opponent entity.Marker) (service.Decision, error)
}

type MatchController struct {
	logger *slog.Logger
	conf   config.Match

	board    *entity.Board
	human    *entity.Player
	bot      *entity.Player
	strategy botStrategy
	ui       UI

	matchID string
	wait    func(ctx context.Context, d time.Duration) error
}

func NewMatchController(
	logger *slog.Logger, conf config.Match, human, bot *entity.Player, strategy botStrategy, ui UI,
) (*MatchController, error) {
	if err := entity.ValidateOpponents(human, bot); err != nil {
		return nil, fmt.Errorf("invalid players: %w", err)
	}

	return &MatchController{
		logger:   logger.With("component", "match_controller"),
		conf:     conf,
		board:    entity.NewBoard(),
		human:    human,
		bot:      bot,
		strategy: strategy,
		ui:       ui,
		matchID:  uuid.NewString(),
		wait:     sleepContext,
	}, nil
}

func (that *MatchController) Board() *entity.Board {
	return that.board
}

// Run - plays matches until the human declines another one.
func (that *MatchController) Run(ctx context.Context) error {
	that.ui.ShowWelcome()

	for {
		winner, err := that.PlayMatch(ctx)
		if err != nil {
			return err
		}

		that.ui.ShowMatchResult(winner)

		again, err := that.ui.PlayAgain(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask for another match: %w", err)
		}

		if !again {
			break
		}

		that.ResetMatch()
		that.ui.ShowPlayAgain()
	}

	that.ui.ShowGoodbye()

	return nil
}

// PlayMatch - plays rounds until someone reaches the winning score.
func (that *MatchController) PlayMatch(ctx context.Context) (*entity.Player, error) {
	log := that.logger.With("match_id", that.matchID)
	log.Info("match started", "human", that.human.Name, "bot", that.bot.Name, "winning_score", that.conf.WinningScore)

	that.ui.ShowBoard(that.board, that.human, that.bot)

	for {
		if winner := that.MatchWinner(); winner != nil {
			log.Info("match finished", "winner", winner.Name)
			return winner, nil
		}

		if _, err := that.PlayRound(ctx); err != nil {
			return nil, fmt.Errorf("round failed: %w", err)
		}
	}
}

// PlayRound - plays one round on a fresh board and scores it. Returns nil on a tie.
// A canceled round is not scored.
func (that *MatchController) PlayRound(ctx context.Context) (*entity.Player, error) {
	current := that.firstPlayer()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := that.playTurn(ctx, current); err != nil {
			return nil, err
		}

		if that.board.HasWinner() || that.board.IsFull() {
			break
		}

		that.ui.ShowBoard(that.board, that.human, that.bot)
		current = that.opponentOf(current)
	}

	winner := that.roundWinner()
	that.ui.ShowRoundResult(that.board, that.human, that.bot, winner)

	if err := that.wait(ctx, that.conf.BotDelay); err != nil {
		return nil, err
	}

	if winner != nil {
		winner.AddPoint()
	}

	that.logRound(winner)
	that.board.Reset()
	that.ui.ShowBoard(that.board, that.human, that.bot)
	that.ui.ShowScore(that.human, that.bot)

	return winner, nil
}

// MatchWinner - the player who reached the winning score, or nil.
func (that *MatchController) MatchWinner() *entity.Player {
	switch {
	case that.human.Points >= that.conf.WinningScore:
		return that.human
	case that.bot.Points >= that.conf.WinningScore:
		return that.bot
	default:
		return nil
	}
}

func (that *MatchController) ResetMatch() {
	that.board.Reset()
	that.human.ResetPoints()
	that.bot.ResetPoints()
	that.matchID = uuid.NewString()
}

func (that *MatchController) playTurn(ctx context.Context, player *entity.Player) error {
	if player.IsBot {
		return that.playBotTurn(ctx)
	}

	return that.playHumanTurn(ctx)
}

func (that *MatchController) playHumanTurn(ctx context.Context) error {
	for {
		position, err := that.ui.ChooseMove(ctx, that.human, that.board.AvailablePositions())
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		err = that.board.SetMarker(position, that.human.Marker)
		if err == nil {
			return nil
		}

		if errors.Is(err, apperror.ErrInvalidPosition) || errors.Is(err, apperror.ErrCellOccupied) {
			that.ui.ShowInvalidChoice()
			continue
		}

		return fmt.Errorf("failed to apply move: %w", err)
	}
}

func (that *MatchController) playBotTurn(ctx context.Context) error {
	that.ui.ShowBotTurn(that.bot)

	if err := that.wait(ctx, that.conf.BotDelay); err != nil {
		return err
	}

	decision, err := that.strategy.Decide(that.board, that.bot.Marker, that.human.Marker)
	if err != nil {
		return fmt.Errorf("bot failed to choose a move: %w", err)
	}

	if err = that.board.SetMarker(decision.Position, that.bot.Marker); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "match_id", that.matchID, "position", decision.Position, "tier", decision.Tier)

	return nil
}

func (that *MatchController) firstPlayer() *entity.Player {
	if that.conf.FirstPlayer == config.FirstPlayerBot {
		return that.bot
	}

	return that.human
}

func (that *MatchController) opponentOf(player *entity.Player) *entity.Player {
	if player == that.human {
		return that.bot
	}

	return that.human
}

func (that *MatchController) roundWinner() *entity.Player {
	switch that.board.WinningMarker() {
	case that.human.Marker:
		return that.human
	case that.bot.Marker:
		return that.bot
	default:
		return nil
	}
}

func (that *MatchController) logRound(winner *entity.Player) {
	log := that.logger.With("match_id", that.matchID, "human_points", that.human.Points, "bot_points", that.bot.Points)
	if winner == nil {
		log.Info("round tied")
		return
	}

	log.Info("round won", "winner", winner.Name)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

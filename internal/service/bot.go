package service

import (
	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/pkg/random"
)

type Tier string

const (
	TierOffense Tier = "offense"
	TierDefense Tier = "defense"
	TierRandom  Tier = "random"
)

type Decision struct {
	Position int
	Tier     Tier
}

type BotService interface {
	ChooseMove(board *entity.Board, own, opponent entity.Marker) (int, error)
	Decide(board *entity.Board, own, opponent entity.Marker) (Decision, error)
}

type botService struct {
	random random.Random
}

func NewBotService(rnd random.Random) BotService {
	return &botService{
		random: rnd,
	}
}

// ChooseMove - picks a position for own marker without touching the board.
func (that *botService) ChooseMove(board *entity.Board, own, opponent entity.Marker) (int, error) {
	decision, err := that.Decide(board, own, opponent)
	if err != nil {
		return 0, err
	}

	return decision.Position, nil
}

// Decide - completes own line first, then blocks the opponent, otherwise plays a random empty cell.
func (that *botService) Decide(board *entity.Board, own, opponent entity.Marker) (Decision, error) {
	winningMoves := board.CurrentWinningMoves()

	if position, ok := firstMoveFor(winningMoves, own); ok {
		return Decision{Position: position, Tier: TierOffense}, nil
	}

	if position, ok := firstMoveFor(winningMoves, opponent); ok {
		return Decision{Position: position, Tier: TierDefense}, nil
	}

	availablePositions := board.AvailablePositions()
	if len(availablePositions) == 0 {
		return Decision{}, apperror.ErrNoAvailableMoves
	}

	return Decision{Position: random.Pick(that.random, availablePositions), Tier: TierRandom}, nil
}

func firstMoveFor(moves []entity.WinningMove, marker entity.Marker) (int, bool) {
	for _, move := range moves {
		if move.Marker == marker {
			return move.Position, true
		}
	}

	return 0, false
}

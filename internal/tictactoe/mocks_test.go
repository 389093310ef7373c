package tictactoe

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/service"
)

type mockUI struct {
	mock.Mock
}

// newMockUI - renderer calls are optional, prompts must be set up by each test.
func newMockUI() *mockUI {
	ui := &mockUI{}
	ui.On("ShowWelcome").Maybe()
	ui.On("ShowBoard", mock.Anything, mock.Anything, mock.Anything).Maybe()
	ui.On("ShowInvalidChoice").Maybe()
	ui.On("ShowBotTurn", mock.Anything).Maybe()
	ui.On("ShowRoundResult", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	ui.On("ShowScore", mock.Anything, mock.Anything).Maybe()
	ui.On("ShowMatchResult", mock.Anything).Maybe()
	ui.On("ShowPlayAgain").Maybe()
	ui.On("ShowGoodbye").Maybe()

	return ui
}

func (that *mockUI) ChooseMove(ctx context.Context, player *entity.Player, available []int) (int, error) {
	args := that.Called(ctx, player, available)
	return args.Int(0), args.Error(1)
}

func (that *mockUI) PlayAgain(ctx context.Context) (bool, error) {
	args := that.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (that *mockUI) ShowWelcome() { that.Called() }

func (that *mockUI) ShowBoard(board *entity.Board, human, bot *entity.Player) {
	that.Called(board, human, bot)
}

func (that *mockUI) ShowInvalidChoice() { that.Called() }

func (that *mockUI) ShowBotTurn(bot *entity.Player) { that.Called(bot) }

func (that *mockUI) ShowRoundResult(board *entity.Board, human, bot, winner *entity.Player) {
	that.Called(board, human, bot, winner)
}

func (that *mockUI) ShowScore(human, bot *entity.Player) { that.Called(human, bot) }

func (that *mockUI) ShowMatchResult(winner *entity.Player) { that.Called(winner) }

func (that *mockUI) ShowPlayAgain() { that.Called() }

func (that *mockUI) ShowGoodbye() { that.Called() }

type mockStrategy struct {
	mock.Mock
}

func (that *mockStrategy) Decide(board *entity.Board, own, opponent entity.Marker) (service.Decision, error) {
	args := that.Called(board, own, opponent)
	return args.Get(0).(service.Decision), args.Error(1)
}

// expectMoves - queues human moves, in order.
func (that *mockUI) expectMoves(positions ...int) {
	for _, position := range positions {
		that.On("ChooseMove", mock.Anything, mock.Anything, mock.Anything).Return(position, nil).Once()
	}
}

// expectDecisions - queues bot moves, in order.
func (that *mockStrategy) expectDecisions(positions ...int) {
	for _, position := range positions {
		that.On("Decide", mock.Anything, mock.Anything, mock.Anything).
			Return(service.Decision{Position: position, Tier: service.TierRandom}, nil).
			Once()
	}
}

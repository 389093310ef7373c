package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markerX entity.Marker = "X"
	markerO entity.Marker = "O"
)

func boardWith(t *testing.T, cells map[int]entity.Marker) *entity.Board {
	t.Helper()

	board := entity.NewBoard()
	for position, marker := range cells {
		require.NoError(t, board.SetMarker(position, marker))
	}

	return board
}

func TestBotService_ChooseMove(t *testing.T) {
	t.Run("Offense completes own line", func(t *testing.T) {
		// Given: the bot (X) holds 1 and 2
		board := boardWith(t, map[int]entity.Marker{1: markerX, 2: markerX})
		bot := NewBotService(random.NewMockRandom())

		// When: the bot chooses a move
		position, err := bot.ChooseMove(board, markerX, markerO)

		// Then: it takes 3
		require.NoError(t, err)
		assert.Equal(t, 3, position)
	})

	t.Run("Defense blocks the opponent", func(t *testing.T) {
		// Given: the human (O) holds 1 and 2
		board := boardWith(t, map[int]entity.Marker{1: markerO, 2: markerO})
		bot := NewBotService(random.NewMockRandom())

		// When: the bot (X) chooses a move
		position, err := bot.ChooseMove(board, markerX, markerO)

		// Then: it blocks on 3
		require.NoError(t, err)
		assert.Equal(t, 3, position)
	})

	t.Run("Offense wins over defense", func(t *testing.T) {
		// Given: X threatens row 1 on 3 and O threatens row 2 on 6
		board := boardWith(t, map[int]entity.Marker{1: markerX, 2: markerX, 4: markerO, 5: markerO})
		bot := NewBotService(random.NewMockRandom())

		// When: the bot (X) chooses a move
		decision, err := bot.Decide(board, markerX, markerO)

		// Then: it completes its own line instead of blocking
		require.NoError(t, err)
		assert.Equal(t, Decision{Position: 3, Tier: TierOffense}, decision)
	})

	t.Run("First threat in line order wins the tie-break", func(t *testing.T) {
		// Given: X threatens row 2 (6), column 1 (1) and the anti-diagonal (3)
		board := boardWith(t, map[int]entity.Marker{4: markerX, 5: markerX, 7: markerX, 9: markerO})
		bot := NewBotService(random.NewMockRandom())

		// When: the bot (X) chooses a move
		position, err := bot.ChooseMove(board, markerX, markerO)

		// Then: rows come first
		require.NoError(t, err)
		assert.Equal(t, 6, position)
	})

	t.Run("Random move from the available positions", func(t *testing.T) {
		// Given: no threats, and a random source returning index 2
		board := boardWith(t, map[int]entity.Marker{1: markerX, 5: markerO})
		rnd := random.NewMockRandom(2)
		bot := NewBotService(rnd)

		// When: the bot chooses a move
		decision, err := bot.Decide(board, markerX, markerO)

		// Then: the third free position is taken
		require.NoError(t, err)
		assert.Equal(t, Decision{Position: 4, Tier: TierRandom}, decision)
	})

	t.Run("Does not touch the board", func(t *testing.T) {
		board := boardWith(t, map[int]entity.Marker{1: markerO, 2: markerO})
		before := *board

		_, err := NewBotService(random.NewMockRandom()).ChooseMove(board, markerX, markerO)

		require.NoError(t, err)
		assert.Equal(t, before, *board)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a tied board
		board := boardWith(t, map[int]entity.Marker{
			1: markerX, 2: markerO, 3: markerX,
			4: markerO, 5: markerX, 6: markerO,
			7: markerO, 8: markerX, 9: markerO,
		})
		bot := NewBotService(random.NewMockRandom())

		// When: the bot is asked to move
		_, err := bot.ChooseMove(board, markerX, markerO)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestBotService_RandomIsUniform(t *testing.T) {
	const trials = 9000

	// Given: an empty board and a seeded source
	board := entity.NewBoard()
	bot := NewBotService(random.New(2024))

	counts := make(map[int]int)

	// When: choosing many moves
	for i := 0; i < trials; i++ {
		position, err := bot.ChooseMove(board, markerX, markerO)
		require.NoError(t, err)
		counts[position]++
	}

	// Then: every position shows up about equally often
	require.Len(t, counts, entity.BoardSize)
	for position := entity.FirstPosition; position <= entity.LastPosition; position++ {
		assert.InDelta(t, trials/entity.BoardSize, counts[position], 200, "position %d", position)
	}
}

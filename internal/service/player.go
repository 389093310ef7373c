package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/pkg/random"
)

type PlayerService interface {
	CreateHuman(name string, marker entity.Marker) (*entity.Player, error)
	CreateBot(opponent *entity.Player) (*entity.Player, error)
}

type playerService struct {
	random random.Random
}

func NewPlayerService(rnd random.Random) PlayerService {
	return &playerService{
		random: rnd,
	}
}

func (that *playerService) CreateHuman(name string, marker entity.Marker) (*entity.Player, error) {
	player, err := entity.NewHumanPlayer(name, marker)
	if err != nil {
		return nil, fmt.Errorf("invalid human player: %w", err)
	}

	return player, nil
}

// CreateBot - draws a bot identity that doesn't clash with the opponent.
func (that *playerService) CreateBot(opponent *entity.Player) (*entity.Player, error) {
	markers := without(entity.BotMarkers, opponent.Marker)
	names := without(entity.BotNames, opponent.Name)

	name := random.Pick(that.random, names)
	marker := random.Pick(that.random, markers)

	bot := entity.NewBotPlayer(name, marker)
	if err := entity.ValidateOpponents(opponent, bot); err != nil {
		return nil, fmt.Errorf("invalid bot player: %w", err)
	}

	return bot, nil
}

func without[T comparable](items []T, excluded T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if item != excluded {
			result = append(result, item)
		}
	}

	return result
}

package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

var (
	BotMarkers = []Marker{"X", "O", "*", "@"}
	BotNames   = []string{"Stanley", "Guy Bro", "Mr. Robot"}
)

type Player struct {
	Name   string `json:"name"`
	Marker Marker `json:"marker"`
	Points int    `json:"points"`
	IsBot  bool   `json:"is_bot,omitempty"`
}

func NewHumanPlayer(name string, marker Marker) (*Player, error) {
	if err := ValidateMarker(marker); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	return &Player{Name: name, Marker: marker}, nil
}

func NewBotPlayer(name string, marker Marker) *Player {
	return &Player{Name: name, Marker: marker, IsBot: true}
}

func (that *Player) AddPoint() {
	that.Points++
}

func (that *Player) ResetPoints() {
	that.Points = 0
}

// ValidateMarker - a marker is a single, non-blank character.
func ValidateMarker(marker Marker) error {
	if utf8.RuneCountInString(string(marker)) != 1 || strings.TrimSpace(string(marker)) == "" {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	return nil
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperror.ErrInvalidName
	}

	return nil
}

// ValidateOpponents - both players need their own marker and name.
func ValidateOpponents(first, second *Player) error {
	if first.Marker == second.Marker {
		return fmt.Errorf("%w: %q", apperror.ErrDuplicateMarker, first.Marker)
	}

	if first.Name == second.Name {
		return fmt.Errorf("%w: %q", apperror.ErrDuplicateName, first.Name)
	}

	return nil
}

package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
)

const clearSequence = "\033[H\033[2J"

// Terminal - line based UI over a reader and a writer.
type Terminal struct {
	scanner     *bufio.Scanner
	lines       chan scannedLine
	startReader sync.Once
	out         io.Writer
	clearScreen bool
}

type scannedLine struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer, clearScreen bool) *Terminal {
	return &Terminal{
		scanner:     bufio.NewScanner(in),
		lines:       make(chan scannedLine),
		out:         out,
		clearScreen: clearScreen,
	}
}

// AskMarker - asks until the answer is a single non-blank character.
func (that *Terminal) AskMarker(ctx context.Context) (entity.Marker, error) {
	for {
		that.println("Please enter your marker.")

		answer, err := that.readLine(ctx)
		if err != nil {
			return entity.NoMarker, err
		}

		if marker := entity.Marker(answer); entity.ValidateMarker(marker) == nil {
			return marker, nil
		}

		that.println("Sorry, invalid choice.")
	}
}

func (that *Terminal) AskName(ctx context.Context) (string, error) {
	for {
		that.println("Please enter your name.")

		answer, err := that.readLine(ctx)
		if err != nil {
			return "", err
		}

		if name := strings.TrimSpace(answer); entity.ValidateName(name) == nil {
			return name, nil
		}

		that.println("Sorry, invalid choice.")
	}
}

// ChooseMove - asks until the answer is one of the available positions.
func (that *Terminal) ChooseMove(ctx context.Context, player *entity.Player, available []int) (int, error) {
	that.printf("%s please choose a square (%s): \n", player.Name, joinOr(available))

	for {
		answer, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		position, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil && slices.Contains(available, position) {
			return position, nil
		}

		that.ShowInvalidChoice()
	}
}

func (that *Terminal) PlayAgain(ctx context.Context) (bool, error) {
	for {
		that.println("Would you like to play again? (y/n)")

		answer, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		that.println("Sorry, must be y or n")
	}
}

func (that *Terminal) ShowWelcome() {
	that.clear()
	that.println("Welcome to Tic Tac Toe!")
	that.println("")
}

func (that *Terminal) ShowBoard(board *entity.Board, human, bot *entity.Player) {
	that.clear()
	that.printf("You're a %s. Computer is a %s.\n", human.Marker, bot.Marker)
	that.println("")
	that.drawBoard(board)
	that.println("")
}

func (that *Terminal) ShowInvalidChoice() {
	that.println("Sorry, that's not a valid choice.")
}

func (that *Terminal) ShowBotTurn(bot *entity.Player) {
	that.printf("Now it's %s's turn.\n", bot.Name)
}

func (that *Terminal) ShowRoundResult(board *entity.Board, human, bot, winner *entity.Player) {
	that.ShowBoard(board, human, bot)

	if winner == nil {
		that.println("It's a tie!")
		return
	}

	that.printf("%s won!\n", winner.Name)
}

func (that *Terminal) ShowScore(human, bot *entity.Player) {
	that.println("Here is the current match score:")
	that.printf("%s has %d.\n", human.Name, human.Points)
	that.printf("%s has %d.\n", bot.Name, bot.Points)
}

func (that *Terminal) ShowMatchResult(winner *entity.Player) {
	that.printf("%s won the match!\n", winner.Name)
}

func (that *Terminal) ShowPlayAgain() {
	that.println("Let's play again!")
	that.println("")
}

func (that *Terminal) ShowGoodbye() {
	that.println("Thanks for playing Tic Tac Toe! Goodbye!")
}

func (that *Terminal) drawBoard(board *entity.Board) {
	const (
		spacer    = "     |     |"
		separator = "-----+-----+-----"
	)

	for row := 0; row < 3; row++ {
		if row > 0 {
			that.println(separator)
		}

		first := row*3 + entity.FirstPosition
		that.println(spacer)
		that.printf("  %s  |  %s  |  %s\n", cellText(board, first), cellText(board, first+1), cellText(board, first+2))
		that.println(spacer)
	}
}

// readLine - waits for the next line or for ctx, whichever comes first.
// A line read after ctx is done stays queued for the next call.
func (that *Terminal) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.startReader.Do(func() {
		go that.scanLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.ErrUnexpectedEOF
		}

		return line.text, line.err
	}
}

// scanLines - owns the scanner, the blocking reads happen here.
func (that *Terminal) scanLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- scannedLine{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- scannedLine{err: fmt.Errorf("failed to read input: %w", err)}
	}
}

func (that *Terminal) clear() {
	if that.clearScreen {
		that.printf("%s", clearSequence)
	}
}

func (that *Terminal) println(line string) {
	_, _ = fmt.Fprintln(that.out, line)
}

func (that *Terminal) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func cellText(board *entity.Board, position int) string {
	if marker := board.MarkerAt(position); marker != entity.NoMarker {
		return string(marker)
	}

	return " "
}

// joinOr - "1", "1 or 2", "1, 2, or 3".
func joinOr(positions []int) string {
	items := make([]string, len(positions))
	for i, position := range positions {
		items[i] = strconv.Itoa(position)
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}

// IsEndOfInput - the player closed stdin.
func IsEndOfInput(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}

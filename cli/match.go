package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	cerr "battleship-cli/internal/error"
	mb "battleship-cli/models/battleship"
)

type Outcome uint8

const (
	OutcomeUndecided Outcome = iota
	OutcomePlayerWon
	OutcomeComputerWon
)

// Match wires one human player against the random computer opponent. The
// player board is visible, the computer board hidden; both fleets are
// placed during construction.
type Match struct {
	uuid          string
	playerBoard   *mb.Board
	computerBoard *mb.Board
	gunner        *mb.Gunner
	rng           *rand.Rand
	in            *bufio.Reader
	out           io.Writer
	renderer      *Renderer
}

type Option func(*Match) error

func NewMatch(optFuncs ...Option) (*Match, error) {
	match := Match{uuid: uuid.NewString()[:6]}
	for _, opt := range optFuncs {
		if err := opt(&match); err != nil {
			return nil, err
		}
	}

	if match.rng == nil {
		match.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if match.in == nil {
		match.in = bufio.NewReader(os.Stdin)
	}
	if match.out == nil {
		match.out = os.Stdout
	}
	if match.renderer == nil {
		match.renderer = NewRenderer(match.out, writerIsTerminal(match.out))
	}

	match.playerBoard = mb.NewBoard(mb.BoardVisible, match.rng)
	match.computerBoard = mb.NewBoard(mb.BoardHidden, match.rng)
	match.gunner = mb.NewGunner(match.rng)

	if err := match.playerBoard.PlaceFleet(); err != nil {
		return nil, err
	}
	if err := match.computerBoard.PlaceFleet(); err != nil {
		return nil, err
	}

	return &match, nil
}

// WithRand fixes the random source for ship placement and the computer
// opponent, making the whole match reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(m *Match) error {
		m.rng = rng
		return nil
	}
}

func WithInput(in io.Reader) Option {
	return func(m *Match) error {
		m.in = bufio.NewReader(in)
		return nil
	}
}

func WithOutput(out io.Writer) Option {
	return func(m *Match) error {
		m.out = out
		return nil
	}
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) PlayerBoard() *mb.Board {
	return m.playerBoard
}

func (m *Match) ComputerBoard() *mb.Board {
	return m.computerBoard
}

// Run drives the match until one side has no ship cells left. Each turn
// renders both boards, resolves the player's shot and then the computer's,
// pausing for Enter after every announcement.
func (m *Match) Run() (Outcome, error) {
	for {
		m.renderer.ClearScreen()

		fmt.Fprintln(m.out, "Your ships are placed:")
		m.renderer.RenderBoard(m.playerBoard)
		fmt.Fprintln(m.out, "The opponent's ships are:")
		m.renderer.RenderBoard(m.computerBoard)

		target, err := m.promptPosition()
		if err != nil {
			return OutcomeUndecided, err
		}

		switch m.computerBoard.Fire(target) {
		case mb.CellStateHit:
			m.renderer.AnnounceHit("You hit a ship!")
		case mb.CellStateMiss:
			m.renderer.AnnounceMiss("You missed!")
		}

		if err := m.waitForEnter(); err != nil {
			return OutcomeUndecided, err
		}

		if m.computerBoard.GameOver() {
			fmt.Fprintln(m.out, "Congratulations! You sank all enemy ships")
			return OutcomePlayerWon, nil
		}

		switch m.playerBoard.Fire(m.gunner.NextTarget()) {
		case mb.CellStateHit:
			m.renderer.AnnounceHit("Opponent has hit your ship!")
		case mb.CellStateMiss:
			m.renderer.AnnounceMiss("Opponent missed")
		}

		if err := m.waitForEnter(); err != nil {
			return OutcomeUndecided, err
		}

		if m.playerBoard.GameOver() {
			fmt.Fprintln(m.out, "Opponent sank all your ships!")
			return OutcomeComputerWon, nil
		}
	}
}

// promptPosition keeps asking until a line parses to an in-bounds
// position, echoing each rejection back to the player.
func (m *Match) promptPosition() (mb.Position, error) {
	for {
		fmt.Fprint(m.out, "Enter the coordinates to fire to (row, column): ")

		line, err := m.in.ReadString('\n')
		if err != nil && line == "" {
			return mb.Position{}, cerr.ErrInputClosed()
		}

		position, parseErr := mb.ParsePosition(line)
		if parseErr != nil {
			fmt.Fprintln(m.out, parseErr)
			continue
		}

		return position, nil
	}
}

func (m *Match) waitForEnter() error {
	fmt.Fprintln(m.out, "Enter to continue...")
	if _, err := m.in.ReadString('\n'); err != nil {
		return cerr.ErrInputClosed()
	}
	return nil
}

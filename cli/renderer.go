package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	mb "battleship-cli/models/battleship"
)

const (
	glyphEmpty = "□" // □
	glyphShip  = "■" // ■
	glyphShot  = "●" // ●
)

// ANSI clear screen plus cursor home
const clearSequence = "\033[2J\033[H"

type Renderer struct {
	out         io.Writer
	clearScreen bool
	hitStyle    *color.Color
	missStyle   *color.Color
}

func NewRenderer(out io.Writer, clearScreen bool) *Renderer {
	return &Renderer{
		out:         out,
		clearScreen: clearScreen,
		hitStyle:    color.New(color.FgRed),
		missStyle:   color.New(color.FgBlue),
	}
}

// ClearScreen rewinds the terminal before a new frame. No-op when the
// output is not a terminal.
func (r *Renderer) ClearScreen() {
	if r.clearScreen {
		fmt.Fprint(r.out, clearSequence)
	}
}

// RenderBoard writes the grid with a column header and numbered rows.
// Hidden boards keep their empty and ship cells blank so the opponent's
// fleet stays secret; hits and misses are always shown.
func (r *Renderer) RenderBoard(board *mb.Board) {
	var sb strings.Builder

	sb.WriteString("   ")
	for column := 0; column < mb.GridSize; column++ {
		fmt.Fprintf(&sb, " %d ", column)
	}
	sb.WriteByte('\n')

	hidden := board.Visibility() == mb.BoardHidden

	for row := 0; row < mb.GridSize; row++ {
		fmt.Fprintf(&sb, "%2d", row)

		for column := 0; column < mb.GridSize; column++ {
			switch board.Cell(mb.NewPosition(row, column)) {
			case mb.CellStateEmpty:
				if hidden {
					sb.WriteString("   ")
				} else {
					fmt.Fprintf(&sb, " %s ", glyphEmpty)
				}

			case mb.CellStateShip:
				if hidden {
					sb.WriteString("   ")
				} else {
					fmt.Fprintf(&sb, " %s ", glyphShip)
				}

			case mb.CellStateHit:
				fmt.Fprintf(&sb, " %s ", r.hitStyle.Sprint(glyphShot))

			case mb.CellStateMiss:
				fmt.Fprintf(&sb, " %s ", r.missStyle.Sprint(glyphShot))
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(r.out, sb.String())
}

func (r *Renderer) AnnounceHit(text string) {
	r.hitStyle.Fprintln(r.out, text)
}

func (r *Renderer) AnnounceMiss(text string) {
	r.missStyle.Fprintln(r.out, text)
}

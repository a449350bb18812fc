package cli

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/fatih/color"

	mb "battleship-cli/models/battleship"
)

func withPlainColors(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestRenderVisibleEmptyBoard(t *testing.T) {
	withPlainColors(t)

	var buf bytes.Buffer
	board := mb.NewBoard(mb.BoardVisible, rand.New(rand.NewSource(1)))

	NewRenderer(&buf, false).RenderBoard(board)
	out := buf.String()

	header := strings.SplitN(out, "\n", 2)[0]
	for column := 0; column < mb.GridSize; column++ {
		if !strings.Contains(header, string(rune('0'+column))) {
			t.Fatalf("header missing column %d: %q", column, header)
		}
	}

	if got := strings.Count(out, glyphEmpty); got != 100 {
		t.Fatalf("expected empty glyphs: 100\tgot: %d", got)
	}
}

func TestRenderHiddenBoardMasksShips(t *testing.T) {
	withPlainColors(t)

	var buf bytes.Buffer
	board := mb.NewBoard(mb.BoardHidden, rand.New(rand.NewSource(1)))
	if err := board.PlaceFleet(); err != nil {
		t.Fatal(err)
	}
	board.Fire(mb.NewPosition(0, 0))

	NewRenderer(&buf, false).RenderBoard(board)
	out := buf.String()

	if strings.Contains(out, glyphShip) {
		t.Fatal("hidden board leaked a ship glyph")
	}
	if strings.Contains(out, glyphEmpty) {
		t.Fatal("hidden board leaked an empty glyph")
	}
	if got := strings.Count(out, glyphShot); got != 1 {
		t.Fatalf("expected shot glyphs: 1\tgot: %d", got)
	}
}

func TestRenderVisibleFleet(t *testing.T) {
	withPlainColors(t)

	var buf bytes.Buffer
	board := mb.NewBoard(mb.BoardVisible, rand.New(rand.NewSource(2)))
	if err := board.PlaceFleet(); err != nil {
		t.Fatal(err)
	}

	NewRenderer(&buf, false).RenderBoard(board)

	if got := strings.Count(buf.String(), glyphShip); got != 14 {
		t.Fatalf("expected ship glyphs: 14\tgot: %d", got)
	}
}

func TestClearScreenSuppressed(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).ClearScreen()
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	NewRenderer(&buf, true).ClearScreen()
	if buf.String() != clearSequence {
		t.Fatalf("expected clear sequence, got %q", buf.String())
	}
}

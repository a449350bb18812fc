package battleship

import (
	"math/rand"
	"time"

	cerr "battleship-cli/internal/error"
)

// FleetSizes is the fixed fleet placed on each board, 14 ship cells total.
var FleetSizes = [4]int{2, 3, 4, 5}

// Random anchors are rejected until the ship fits. The full fleet covers
// at most 14% of the grid, so the budget is generous; exhausting it means
// the requested fleet cannot fit at all.
const maxPlacementAttempts = 10000

type Board struct {
	grid       Grid
	ships      []Position
	visibility Visibility
	rng        *rand.Rand
}

// NewBoard creates an empty board. A nil rng falls back to a time-seeded
// source; callers inject a fixed seed for deterministic placement.
func NewBoard(visibility Visibility, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Board{
		grid:       NewGrid(GridSize),
		ships:      make([]Position, 0, 14),
		visibility: visibility,
		rng:        rng,
	}
}

// PlaceFleet places the four standard ships.
func (b *Board) PlaceFleet() error {
	for _, size := range FleetSizes {
		if err := b.PlaceShip(size); err != nil {
			return err
		}
	}
	return nil
}

// PlaceShip marks size contiguous empty cells as a new ship. Placement is
// rejection sampling: draw a random anchor and orientation, commit if the
// ship fits, otherwise retry up to the attempt budget.
func (b *Board) PlaceShip(size int) error {
	if size > GridSize {
		return cerr.ErrShipLargerThanGrid(size, GridSize)
	}

	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		anchor := NewPosition(b.rng.Intn(GridSize), b.rng.Intn(GridSize))

		orientation := OrientationHorizontal
		if b.rng.Intn(2) == 1 {
			orientation = OrientationVertical
		}

		if !b.canPlace(anchor, size, orientation) {
			continue
		}

		b.commitShip(anchor, size, orientation)
		return nil
	}

	return cerr.ErrShipPlacementFailed(size, maxPlacementAttempts)
}

func (b *Board) canPlace(anchor Position, size int, orientation Orientation) bool {
	if orientation == OrientationHorizontal {
		if anchor.Column+size > GridSize {
			return false
		}

		for i := 0; i < size; i++ {
			if b.grid[anchor.Row][anchor.Column+i] != CellStateEmpty {
				return false
			}
		}
		return true
	}

	if anchor.Row+size > GridSize {
		return false
	}

	for i := 0; i < size; i++ {
		if b.grid[anchor.Row+i][anchor.Column] != CellStateEmpty {
			return false
		}
	}
	return true
}

func (b *Board) commitShip(anchor Position, size int, orientation Orientation) {
	for i := 0; i < size; i++ {
		cell := anchor
		if orientation == OrientationHorizontal {
			cell.Column += i
		} else {
			cell.Row += i
		}

		b.grid[cell.Row][cell.Column] = CellStateShip
		b.ships = append(b.ships, cell)
	}
}

// Fire resolves a shot at an in-bounds position. Empty cells become Miss,
// ship cells become Hit. A cell that was already resolved stays as is and
// reports Miss, so re-firing is indistinguishable from missing.
func (b *Board) Fire(position Position) CellState {
	switch b.grid[position.Row][position.Column] {
	case CellStateEmpty:
		b.grid[position.Row][position.Column] = CellStateMiss
		return CellStateMiss

	case CellStateShip:
		b.grid[position.Row][position.Column] = CellStateHit
		return CellStateHit

	default:
		return CellStateMiss
	}
}

// GameOver reports whether every ship cell on this board has been hit.
// Hits are never undone, so once true it stays true.
func (b *Board) GameOver() bool {
	for _, position := range b.ships {
		if b.grid[position.Row][position.Column] != CellStateHit {
			return false
		}
	}
	return true
}

// Cell exposes a single cell state for rendering.
func (b *Board) Cell(position Position) CellState {
	return b.grid[position.Row][position.Column]
}

func (b *Board) Visibility() Visibility {
	return b.visibility
}

func (b *Board) ShipCellCount() int {
	return len(b.ships)
}

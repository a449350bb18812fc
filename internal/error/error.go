package error

import "fmt"

const (
	ConstErrInputClosed = "input stream closed before the match finished"
)

func ErrShipLargerThanGrid(size, gridSize int) error {
	return fmt.Errorf("ship does not fit in grid\tsize: %d\tgrid size: %d", size, gridSize)
}

func ErrShipPlacementFailed(size, attempts int) error {
	return fmt.Errorf("no room left to place ship after random retries\tsize: %d\tattempts: %d", size, attempts)
}

func ErrMalformedCoordinates(input string) error {
	return fmt.Errorf("coordinates must be two comma separated numbers, e.g. 3,4\tgot: %q", input)
}

func ErrCoordsOutOfGridBound(row, column int) error {
	return fmt.Errorf("incoming row or column is out of game grid bound\trow: %d\tcolumn: %d", row, column)
}

func ErrInputClosed() error {
	return fmt.Errorf(ConstErrInputClosed)
}

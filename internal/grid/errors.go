package grid

import "errors"

// Errors returned by engine operations.
var (
	ErrInvalidBoard     = errors.New("grid: invalid board")
	ErrInvalidDirection = errors.New("grid: invalid direction")
	ErrInvalidRules     = errors.New("grid: invalid rules")
	ErrBoardFull        = errors.New("grid: no empty cell")
)

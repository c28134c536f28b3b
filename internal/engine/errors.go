package engine

import "errors"

var (
	// ErrInvalidSize indicates a board side below the rules' minimum or a
	// grid buffer whose length does not match its side.
	ErrInvalidSize = errors.New("engine: invalid board size")
	// ErrOutOfBounds indicates a position outside the board.
	ErrOutOfBounds = errors.New("engine: position out of bounds")
	// ErrReentrant indicates a mutating call made from a change listener.
	ErrReentrant = errors.New("engine: mutation during change notification")
	// ErrInvalidColor indicates a cell value outside 0..Colors.
	ErrInvalidColor = errors.New("engine: color outside the palette")
	// ErrInvalidRules indicates rules that fail Validate.
	ErrInvalidRules = errors.New("engine: invalid rules")
)

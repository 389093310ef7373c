package apperror

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidMarker    = errors.New("invalid marker")
	ErrInvalidName      = errors.New("invalid name")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrDuplicateMarker  = errors.New("marker is already taken")
	ErrDuplicateName    = errors.New("name is already taken")
)

package ncube

import "errors"

// Sentinel errors for the ncube package.
//
// The engine treats caller misuse as a contract violation and panics with one
// of these values rather than returning it; recoverable application errors
// live in the packages that produce them.
var (
	ErrCubeSize     = errors.New("ncube: cube size must be at least 2")
	ErrInvalidFace  = errors.New("ncube: invalid face")
	ErrInvalidAxis  = errors.New("ncube: invalid axis")
	ErrStickerRange = errors.New("ncube: sticker coordinate out of range")

	// ErrOffLattice signals a slice coordinate or cubie position that does
	// not correspond to any valid lattice value. During a turn this means a
	// corrupted transform or a tolerance set too small.
	ErrOffLattice = errors.New("ncube: coordinate off the cube lattice")
)

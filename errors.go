package avltree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avltree: invalid configuration")
	// ErrInvalidHandle signals a nil or foreign node handle passed to an
	// operation that requires a position within the tree.
	ErrInvalidHandle = errors.New("avltree: invalid node handle")
)

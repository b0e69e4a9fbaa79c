package bounded

import (
	"github.com/Laisky/errors/v2"
)

// ErrFull returned by every push operation when the container already
// holds capacity elements.
//
// Running into a full container is an expected, recoverable condition,
// check it with errors.Is and retry after draining some elements.
var ErrFull = errors.New("container is full")

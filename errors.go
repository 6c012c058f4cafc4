package listupdate

import (
	"errors"
	"fmt"
)

// Returned (wrapped) by Access when the requested element isn't part of the
// configuration.
var ErrElementNotFound = errors.New("listupdate: element not found")

func elementNotFound[T comparable](element T) error {
	return fmt.Errorf("%w: %v", ErrElementNotFound, element)
}

package harrier

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned when a navigation target cannot be parsed.
var ErrInvalidURL = errors.New("invalid url")

// ErrNoBrowser is the panic value of NewRouter when it is given a nil Browser.
var ErrNoBrowser = errors.New("no browser provided")

func invalidURLError(raw string, err error) error {
	return fmt.Errorf("%w %q: %v", ErrInvalidURL, raw, err)
}

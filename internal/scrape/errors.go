package scrape

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBlocked signals that the site issued a bot challenge. The navigator
// stops making requests for the run and reports a blocked terminal state.
var ErrBlocked = errors.New("site blocked automated access")

// IncompleteListingError marks a listing missing required fields. It is
// counted as a per-listing error and the run continues.
type IncompleteListingError struct {
	Missing []string
}

func (e *IncompleteListingError) Error() string {
	return fmt.Sprintf("listing missing required fields: %s", strings.Join(e.Missing, ", "))
}

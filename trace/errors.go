package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSites indicates the site label list is empty.
	ErrNoSites = errors.New("trace: at least one detector-site is required")

	// ErrEmptySiteLabel indicates a site label is the empty string.
	ErrEmptySiteLabel = errors.New("trace: site label is empty")

	// ErrDuplicateSite indicates two sites share the same label.
	ErrDuplicateSite = errors.New("trace: duplicate site label")

	// ErrNoShots indicates the outcome array contains no shots.
	ErrNoShots = errors.New("trace: at least one shot is required")

	// ErrMalformedTrace indicates the outcome array violates completeness:
	// a shot with the wrong round count, a round with the wrong site count,
	// or a non-binary outcome value. The returned error is a *CoordError
	// and unwraps to this sentinel.
	ErrMalformedTrace = errors.New("trace: malformed measurement trace")

	// ErrOutOfRange indicates a shot, round, or site index outside bounds.
	ErrOutOfRange = errors.New("trace: index out of range")
)

// CoordError identifies the first coordinate at which a trace violates the
// completeness invariant. Site is empty when the violation is a missing or
// extra round rather than a bad cell. Unwraps to ErrMalformedTrace.
type CoordError struct {
	Shot   int
	Round  int
	Site   string
	Reason string
}

func (e *CoordError) Error() string {
	if e.Site == "" {
		return fmt.Sprintf("trace: malformed trace at shot=%d round=%d: %s", e.Shot, e.Round, e.Reason)
	}

	return fmt.Sprintf("trace: malformed trace at shot=%d round=%d site=%q: %s", e.Shot, e.Round, e.Site, e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformedTrace) match a *CoordError.
func (e *CoordError) Unwrap() error { return ErrMalformedTrace }

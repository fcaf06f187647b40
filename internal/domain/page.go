package domain

const (
	// DefaultPageLimit is applied when a caller does not request a limit.
	DefaultPageLimit = 50
	// MaxPageLimit caps the number of rows a single request may return.
	MaxPageLimit = 100
)

// Page is an offset/limit window into an ordered result set.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the window to usable bounds: a negative offset becomes
// zero, a missing or non-positive limit becomes DefaultPageLimit, and the
// limit is capped at MaxPageLimit.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

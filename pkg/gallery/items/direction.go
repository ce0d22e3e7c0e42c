package items

// Direction is where a navigation card leads.
type Direction int

// Direction constants
const (
	Up Direction = iota
	Next
	Previous
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Next, Previous}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Next:
		return "Next"
	case Previous:
		return "Previous"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a known direction
func (d Direction) IsValid() bool {
	return d >= Up && d <= Previous
}

// Opposite returns the opposite sibling direction. Up has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Next:
		return Previous
	case Previous:
		return Next
	default:
		return d
	}
}

// Step returns the offset into a sibling list for this direction
func (d Direction) Step() int {
	switch d {
	case Next:
		return 1
	case Previous:
		return -1
	default:
		return 0
	}
}

// Glyph returns the icon drawn on the navigation card
func (d Direction) Glyph() string {
	switch d {
	case Up:
		return "↑"
	case Next:
		return "→"
	case Previous:
		return "←"
	default:
		return "?"
	}
}

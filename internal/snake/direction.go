package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota // Stationary, before the first key press
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the step of the direction in block units.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// turns lists, for each direction the snake last moved in, the requests
// that are accepted. Requests on the axis in motion are rejected.
var turns = map[Direction][]Direction{
	DirNone:  {DirUp, DirDown, DirLeft, DirRight},
	DirUp:    {DirLeft, DirRight},
	DirDown:  {DirLeft, DirRight},
	DirLeft:  {DirUp, DirDown},
	DirRight: {DirUp, DirDown},
}

// CanTurn reports whether a snake last moving in from may be steered to to.
func CanTurn(from, to Direction) bool {
	for _, d := range turns[from] {
		if d == to {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

package model

// Direction is one of the eight compass neighbours of a cell.
type Direction int8

const (
	NW Direction = iota
	Up
	NE
	Right
	SE
	Down
	SW
	Left

	directionCount = 8
)

// Directions lists every direction in index order.
var Directions = [directionCount]Direction{NW, Up, NE, Right, SE, Down, SW, Left}

var directionNames = [directionCount]string{"nw", "up", "ne", "right", "se", "down", "sw", "left"}

// Opposite rotates the direction by 180°.
func (d Direction) Opposite() Direction {
	return d.rotate(4)
}

// Right rotates the direction 45° clockwise.
func (d Direction) Right() Direction {
	return d.rotate(1)
}

// Left rotates the direction 45° counter-clockwise.
func (d Direction) Left() Direction {
	return d.rotate(directionCount - 1)
}

// IsDiagonal reports whether d points at a corner rather than a side.
func (d Direction) IsDiagonal() bool {
	return d%2 == 0
}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return "invalid"
	}
	return directionNames[d]
}

func (d Direction) rotate(steps int) Direction {
	return Direction((int(d) + steps) % directionCount)
}

package primitives

import (
	"fmt"
	"strings"
)

// Direction is an enum of the eight step vectors a word can be laid out along.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
)

// AllDirections lists every direction in canonical order.
var AllDirections = [...]Direction{
	DirectionUp,
	DirectionDown,
	DirectionLeft,
	DirectionRight,
	DirectionUpLeft,
	DirectionUpRight,
	DirectionDownLeft,
	DirectionDownRight,
}

type directionInfo struct {
	name       string
	dRow, dCol int
	reverse    Direction
}

var directions = [...]directionInfo{
	DirectionUp:        {"up", -1, 0, DirectionDown},
	DirectionDown:      {"down", 1, 0, DirectionUp},
	DirectionLeft:      {"left", 0, -1, DirectionRight},
	DirectionRight:     {"right", 0, 1, DirectionLeft},
	DirectionUpLeft:    {"up-left", -1, -1, DirectionDownRight},
	DirectionUpRight:   {"up-right", -1, 1, DirectionDownLeft},
	DirectionDownLeft:  {"down-left", 1, -1, DirectionUpRight},
	DirectionDownRight: {"down-right", 1, 1, DirectionUpLeft},
}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionDownRight
}

// Step returns the (dRow, dCol) vector of the direction, or (0, 0) when d
// is not one of the eight directions.
func (d Direction) Step() (int, int) {
	if !d.Valid() {
		return 0, 0
	}
	info := directions[d]
	return info.dRow, info.dCol
}

// Reverse returns the direction whose step vector is the negation of d's.
// An invalid direction is returned unchanged.
func (d Direction) Reverse() Direction {
	if !d.Valid() {
		return d
	}
	return directions[d].reverse
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directions[d].name
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection accepts names like "up-left", "UP_LEFT" or "upleft".
func ParseDirection(s string) (Direction, error) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range AllDirections {
		if strings.ReplaceAll(directions[d].name, "-", "") == norm {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

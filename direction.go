// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.16
//

package geoxy

import (
	"errors"
	"fmt"
)

var ErrInvalidDirection = errors.New("invalid direction")

// Hemisphere marker
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Case-sensitive; only "N", "S", "E" and "W" are accepted
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "N":
		return North, nil
	case "S":
		return South, nil
	case "E":
		return East, nil
	case "W":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

func (p Direction) String() string {
	switch p {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "UNKNOWN!"
	}
}

func (p Direction) Sign() float64 {
	if p == South || p == West {
		return -1.0
	}
	return 1.0
}

func (p Direction) IsLat() bool {
	return p == North || p == South
}

func (p Direction) IsLon() bool {
	return p == East || p == West
}

// internal/game/types.go
//
// Core type definitions for the cube game.
// Defines:
//   - Color: closed set of cube colors (red/green/blue).
//   - Sample: how many cubes of one color were shown.
//   - DrawSet: one handful of cubes revealed at once.
//   - Game: identifier plus every draw-set of that game.
//   - Limits: maximum cube count per color, indexed by Color.

package game

import "fmt"

// Color identifies a cube color. Only the constants below are valid.
type Color int

const (
	Red Color = iota
	Green
	Blue

	// NumColors is the size of the color set; keep it last.
	NumColors
)

// Colors lists every valid Color in declaration order.
var Colors = [NumColors]Color{Red, Green, Blue}

// String returns the lowercase word used in puzzle input.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor maps an input word to its Color.
// Matching is exact: "Red" or "reds" are rejected.
func ParseColor(word string) (Color, bool) {
	switch word {
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	default:
		return 0, false
	}
}

// Sample is "Count cubes of Color" shown in a single draw.
type Sample struct {
	Color Color
	Count int
}

// DrawSet is one simultaneous reveal of cubes from the bag.
type DrawSet []Sample

// Game holds one parsed input line.
type Game struct {
	ID   int       // Game identifier, always positive.
	Sets []DrawSet // Draw-sets in input order.
}

// Limits is the maximum number of cubes of each color in the bag.
// Being an array, it always has an entry for every Color.
type Limits [NumColors]int

// DefaultLimits is the bag content the puzzle asks about:
// 12 red, 13 green and 14 blue cubes.
var DefaultLimits = Limits{
	Red:   12,
	Green: 13,
	Blue:  14,
}

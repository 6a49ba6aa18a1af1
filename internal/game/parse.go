// internal/game/parse.go
//
// Text parsing for puzzle lines.
// Grammar:
//   line    = "Game " digits ": " drawset { ";" drawset }
//   drawset = sample { "," sample }
//   sample  = digits " " color
//
// Whitespace around draw-sets and samples is trimmed before parsing.

package game

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformed marks text that does not follow the grammar.
	ErrMalformed = errors.New("malformed input")
	// ErrUnknownColor marks a sample whose color word is not in the color set.
	ErrUnknownColor = errors.New("unknown color")
)

var (
	reLine   = regexp.MustCompile(`^Game (\d+): (.*)$`)
	reSample = regexp.MustCompile(`^(\d+) (\w+)$`)
)

// ParseError reports why a line or sample could not be parsed.
type ParseError struct {
	Line   string // Offending text.
	Reason string
	Err    error // ErrMalformed, ErrUnknownColor or a strconv error.
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSample parses text like "6 red".
func ParseSample(text string) (Sample, error) {
	m := reSample.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, &ParseError{Line: text, Reason: "expected \"<count> <color>\"", Err: ErrMalformed}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Sample{}, &ParseError{Line: text, Reason: "bad count", Err: err}
	}
	c, ok := ParseColor(m[2])
	if !ok {
		return Sample{}, &ParseError{Line: text, Reason: fmt.Sprintf("unknown color %q", m[2]), Err: ErrUnknownColor}
	}
	return Sample{Color: c, Count: n}, nil
}

// ParseLine parses one full game line such as
// "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
// Errors from individual samples are re-reported against the whole line.
func ParseLine(line string) (Game, error) {
	line = strings.TrimRight(line, "\r\n")
	m := reLine.FindStringSubmatch(line)
	if m == nil {
		return Game{}, &ParseError{Line: line, Reason: "expected \"Game <id>: ...\"", Err: ErrMalformed}
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, &ParseError{Line: line, Reason: "bad game id", Err: err}
	}
	if id <= 0 {
		return Game{}, &ParseError{Line: line, Reason: "game id must be positive", Err: ErrMalformed}
	}

	setTexts := strings.Split(m[2], ";")
	g := Game{ID: id, Sets: make([]DrawSet, 0, len(setTexts))}
	for i, setText := range setTexts {
		if strings.TrimSpace(setText) == "" {
			return Game{}, &ParseError{Line: line, Reason: fmt.Sprintf("draw-set %d is empty", i+1), Err: ErrMalformed}
		}
		pieces := strings.Split(setText, ",")
		set := make(DrawSet, 0, len(pieces))
		for _, piece := range pieces {
			s, err := ParseSample(strings.TrimSpace(piece))
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					return Game{}, &ParseError{Line: line, Reason: fmt.Sprintf("draw-set %d: %s: %s", i+1, pe.Line, pe.Reason), Err: pe.Err}
				}
				return Game{}, err
			}
			set = append(set, s)
		}
		g.Sets = append(g.Sets, set)
	}
	return g, nil
}

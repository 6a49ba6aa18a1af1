// internal/tally/tally.go
//
// Driver for the cube puzzle.
// Responsibilities:
//   - Read puzzle input one line at a time, skipping blank lines.
//   - Parse each line into a game.Game and check it against the limits.
//   - Sum the identifiers of possible games.
//
// Error policy:
//   - By default the first parse error aborts the run.
//   - With Options.KeepGoing, malformed lines are skipped and every parse
//     error is returned combined (multierr) next to the partial result.
//   - Every parse error is prefixed with its 1-based line number.

package tally

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"

	"github.com/robalobadob/cubes/internal/game"
)

// Options tunes how Sum treats malformed lines.
type Options struct {
	KeepGoing bool // collect parse errors instead of stopping at the first
}

// Result summarises one pass over the input.
type Result struct {
	Sum      int // sum of identifiers of possible games
	Games    int // well-formed games seen
	Possible int // games that fit the limits
}

// Sum reads games from r and adds up the identifiers of those possible
// under limits. Read errors are always fatal.
func Sum(r io.Reader, limits game.Limits, opts Options) (Result, error) {
	var (
		res  Result
		errs error
		n    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		g, err := game.ParseLine(line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", n, err)
			if !opts.KeepGoing {
				return res, err
			}
			errs = multierr.Append(errs, err)
			continue
		}

		res.Games++
		if bad, over := g.Violation(limits); over {
			log.Debug().
				Int("game", g.ID).
				Str("color", bad.Color.String()).
				Int("count", bad.Count).
				Int("limit", limits[bad.Color]).
				Msg("game not possible")
			continue
		}
		res.Possible++
		res.Sum += g.ID
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read input: %w", err)
	}
	return res, errs
}

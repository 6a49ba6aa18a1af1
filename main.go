// main.go
//
// Entry point for the cubes command.
// Reads game lines, prints the sum of the identifiers of games that are
// possible with 12 red, 13 green and 14 blue cubes.
//
// Input: first argument, else CUBES_INPUT_FILE ("-" is stdin), or the
// embedded example when CUBES_EXAMPLE=true. Logs go to stderr; stdout
// carries only the sum.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cubes/assets"
	"github.com/robalobadob/cubes/internal/config"
	"github.com/robalobadob/cubes/internal/game"
	"github.com/robalobadob/cubes/internal/tally"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

// run opens the configured input, tallies it, and writes the sum to out.
func run(cfg config.Config, stdin io.Reader, out io.Writer) error {
	in, err := openInput(cfg, stdin)
	if err != nil {
		return err
	}
	defer in.Close()

	res, err := tally.Sum(in, game.DefaultLimits, tally.Options{KeepGoing: cfg.KeepGoing})
	if err != nil {
		return err
	}
	log.Debug().Int("games", res.Games).Int("possible", res.Possible).Int("sum", res.Sum).Msg("done")
	_, err = fmt.Fprintln(out, res.Sum)
	return err
}

func openInput(cfg config.Config, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case cfg.Example:
		return assets.Example()
	case cfg.InputFile == "-":
		return io.NopCloser(stdin), nil
	default:
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		return f, nil
	}
}

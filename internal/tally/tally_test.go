package tally

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/robalobadob/cubes/assets"
	"github.com/robalobadob/cubes/internal/game"
)

const (
	gameOne   = "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green"
	gameTwo   = "Game 2: 1 blue, 2 green"
	gameThree = "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red"
)

func TestSumEmpty(t *testing.T) {
	res, err := Sum(strings.NewReader(""), game.DefaultLimits, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestSumSingleGames(t *testing.T) {
	res, err := Sum(strings.NewReader(gameOne), game.DefaultLimits, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sum)

	res, err = Sum(strings.NewReader(gameThree), game.DefaultLimits, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Sum)
	assert.Equal(t, 1, res.Games)
}

func TestSumMixed(t *testing.T) {
	in := gameOne + "\n\n" + gameThree + "\n" + gameTwo + "\n"
	res, err := Sum(strings.NewReader(in), game.DefaultLimits, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Sum: 3, Games: 3, Possible: 2}, res)
}

func TestSumOrderIndependent(t *testing.T) {
	a, err := Sum(strings.NewReader(strings.Join([]string{gameOne, gameTwo, gameThree}, "\n")), game.DefaultLimits, Options{})
	require.NoError(t, err)
	b, err := Sum(strings.NewReader(strings.Join([]string{gameThree, gameTwo, gameOne}, "\n")), game.DefaultLimits, Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSumExample(t *testing.T) {
	f, err := assets.Example()
	require.NoError(t, err)
	defer f.Close()

	res, err := Sum(f, game.DefaultLimits, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Sum: 8, Games: 5, Possible: 3}, res)
}

func TestSumAbortsOnParseError(t *testing.T) {
	in := gameOne + "\nGame abc: 1 red\n" + gameTwo
	res, err := Sum(strings.NewReader(in), game.DefaultLimits, Options{})
	var pe *game.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Game abc: 1 red", pe.Line)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, res.Games)
}

func TestSumKeepGoing(t *testing.T) {
	in := strings.Join([]string{
		gameOne,
		"Game abc: 1 red",
		gameTwo,
		"Game 9: 4 purple",
		gameThree,
	}, "\n")
	res, err := Sum(strings.NewReader(in), game.DefaultLimits, Options{KeepGoing: true})
	require.Error(t, err)
	assert.Equal(t, Result{Sum: 3, Games: 3, Possible: 2}, res)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "line 2")
	assert.ErrorIs(t, errs[0], game.ErrMalformed)
	assert.Contains(t, errs[1].Error(), "line 4")
	assert.ErrorIs(t, errs[1], game.ErrUnknownColor)
}

func TestSumReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Sum(iotest.ErrReader(boom), game.DefaultLimits, Options{})
	assert.ErrorIs(t, err, boom)
}

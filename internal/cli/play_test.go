package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpsgame/rpsgame-go/internal/factory"
)

func runScriptedGame(t *testing.T, script string, maxAttempts int) (string, error) {
	t.Helper()

	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	var out bytes.Buffer
	game := newLocalGame(app, strings.NewReader(script), &out, maxAttempts)
	runErr := game.Run(context.Background())
	return out.String(), runErr
}

func TestPlaySingleRound(t *testing.T) {
	script := strings.Join([]string{
		"2",        // player count
		"alice",    // names
		"bob",
		"rock",     // alice commits
		"abhi",
		"scissors", // bob commits
		"bob-salt",
		"rock",     // alice reveals
		"abhi",
		"scissors", // bob reveals
		"bob-salt",
		"n",        // stop after one round
	}, "\n") + "\n"

	out, err := runScriptedGame(t, script, 3)
	require.NoError(t, err)

	assert.Contains(t, out, "alice wins the round!")
	assert.Contains(t, out, "The game score so far is:")
	assert.Contains(t, out, "- alice: 1")
	assert.Contains(t, out, "- bob: 0")
}

func TestPlayRepromptsInvalidPlayerCount(t *testing.T) {
	script := strings.Join([]string{
		"one",  // not a number
		"1",    // too few
		"2",    // accepted
		"alice",
		"bob",
		"paper",
		"s1",
		"paper",
		"s2",
		"paper",
		"s1",
		"paper",
		"s2",
		"n",
	}, "\n") + "\n"

	out, err := runScriptedGame(t, script, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Please enter a number of at least 2."))
	assert.Contains(t, out, "The round is a tie.")
	assert.Contains(t, out, "- alice: 0")
	assert.Contains(t, out, "- bob: 0")
}

func TestPlayRepromptsDuplicateName(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"alice",
		"alice", // taken, re-prompted
		"bob",
		"rock",
		"s1",
		"rock",
		"s2",
		"rock",
		"s1",
		"rock",
		"s2",
		"n",
	}, "\n") + "\n"

	out, err := runScriptedGame(t, script, 3)
	require.NoError(t, err)

	assert.Contains(t, out, "Can't use that name")
	assert.Contains(t, out, "The round is a tie.")
}

func TestPlayRevealRetryAfterMismatch(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"alice",
		"bob",
		"rock", // alice commits rock/abhi
		"abhi",
		"paper", // bob commits paper/bs
		"bs",
		"rock",  // alice's first reveal uses the wrong salt
		"wrong",
		"rock", // second attempt matches
		"abhi",
		"paper",
		"bs",
		"n",
	}, "\n") + "\n"

	out, err := runScriptedGame(t, script, 3)
	require.NoError(t, err)

	assert.Contains(t, out, "That doesn't match your commitment (attempt 1 of 3).")
	assert.Contains(t, out, "bob wins the round!")
	assert.Contains(t, out, "- bob: 1")
}

func TestPlayRevealAttemptsExhausted(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"alice",
		"bob",
		"rock",
		"abhi",
		"paper",
		"bs",
		"rock", // two bad reveals with max-attempts 2
		"nope",
		"rock",
		"still-nope",
	}, "\n") + "\n"

	out, err := runScriptedGame(t, script, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reveal within 2 attempts")
	assert.Contains(t, out, "attempt 2 of 2")
}

func TestPlayMultipleRoundsAccumulate(t *testing.T) {
	script := strings.Join([]string{
		"2",
		"alice",
		"bob",
		"rock", // round 1: alice wins
		"a1",
		"scissors",
		"b1",
		"rock",
		"a1",
		"scissors",
		"b1",
		"y", // another round
		"paper", // round 2: alice wins again
		"a2",
		"rock",
		"b2",
		"paper",
		"a2",
		"rock",
		"b2",
		"n",
	}, "\n") + "\n"

	out, err := runScriptedGame(t, script, 3)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Round 2 ===")
	assert.Contains(t, out, "- alice: 2")
	assert.Contains(t, out, "- bob: 0")
}

func TestPlayStopsCleanlyOnEOF(t *testing.T) {
	out, err := runScriptedGame(t, "2\nalice\n", 3)
	require.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out, "Player 2, enter your name: ")
}

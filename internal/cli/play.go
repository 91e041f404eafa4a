package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpsgame/rpsgame-go/internal/commitment"
	"github.com/rpsgame/rpsgame-go/internal/factory"
	"github.com/rpsgame/rpsgame-go/internal/model"
)

func newPlayCmd() *cobra.Command {
	var maxAttempts int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local hot-seat game",
		Long: `Run a complete commit-reveal game locally at the terminal.

Players take turns at the same keyboard. Each round every player enters a
choice and a secret salt; only the resulting digest is shown until everyone
has committed. Players then reveal by re-entering their choice and salt,
and the round is scored pairwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{})
			if err != nil {
				return err
			}

			game := newLocalGame(app, os.Stdin, os.Stdout, maxAttempts)
			return game.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 3, "Reveal attempts allowed per player per round")

	return cmd
}

// localGame runs an interactive hot-seat session against in-process services
type localGame struct {
	app         *factory.App
	in          *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

func newLocalGame(app *factory.App, in io.Reader, out io.Writer, maxAttempts int) *localGame {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &localGame{
		app:         app,
		in:          bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// Run plays rounds until the players stop or input ends
func (g *localGame) Run(ctx context.Context) error {
	count, err := g.promptPlayerCount()
	if err != nil {
		return err
	}

	controller := g.app.SessionController

	sess, err := controller.CreateSession(ctx)
	if err != nil {
		return err
	}
	code := sess.Code

	names, err := g.promptPlayerNames(ctx, code, count)
	if err != nil {
		return err
	}

	if _, err := controller.Start(ctx, code); err != nil {
		return err
	}

	for round := 1; ; round++ {
		fmt.Fprintf(g.out, "\n=== Round %d ===\n", round)

		if err := g.commitPhase(ctx, code, names); err != nil {
			return err
		}
		if err := g.revealPhase(ctx, code, names); err != nil {
			return err
		}

		sess, err := controller.ScoreRound(ctx, code)
		if err != nil {
			return err
		}

		last := sess.Rounds[len(sess.Rounds)-1]
		if last.Winner != "" {
			fmt.Fprintf(g.out, "\n%s wins the round!\n", last.Winner)
		} else {
			fmt.Fprintln(g.out, "\nThe round is a tie.")
		}

		fmt.Fprintln(g.out, "The game score so far is:")
		printScores(g.out, sess.Scores)

		again, err := g.promptYesNo("Play another round? (y/n): ")
		if err != nil || !again {
			return err
		}

		if _, err := controller.NextRound(ctx, code); err != nil {
			return err
		}
	}
}

func (g *localGame) commitPhase(ctx context.Context, code model.SessionCode, names []string) error {
	digests := make(map[string]model.Commitment, len(names))

	for _, name := range names {
		fmt.Fprintf(g.out, "\n%s, it's your turn. Don't let the others peek!\n", name)

		choice, err := g.promptChoice(name)
		if err != nil {
			return err
		}
		salt, err := g.promptLine(fmt.Sprintf("%s, enter a secret salt: ", name))
		if err != nil {
			return err
		}

		digest := commitment.Commit(choice, salt)
		if _, err := g.app.SessionController.Commit(ctx, code, name, digest); err != nil {
			return err
		}
		digests[name] = digest
	}

	fmt.Fprintln(g.out, "\nAll players have committed:")
	for _, name := range names {
		fmt.Fprintf(g.out, "- %s: %s\n", name, digests[name])
	}
	return nil
}

func (g *localGame) revealPhase(ctx context.Context, code model.SessionCode, names []string) error {
	fmt.Fprintln(g.out, "\nTime to reveal.")

	for _, name := range names {
		revealed := false
		for attempt := 1; attempt <= g.maxAttempts; attempt++ {
			choice, err := g.promptChoice(name)
			if err != nil {
				return err
			}
			salt, err := g.promptLine(fmt.Sprintf("%s, enter your salt: ", name))
			if err != nil {
				return err
			}

			_, err = g.app.SessionController.Reveal(ctx, code, name, choice, salt)
			if err == nil {
				revealed = true
				break
			}
			fmt.Fprintf(g.out, "That doesn't match your commitment (attempt %d of %d).\n", attempt, g.maxAttempts)
		}
		if !revealed {
			return fmt.Errorf("%s failed to reveal within %d attempts", name, g.maxAttempts)
		}
	}
	return nil
}

func (g *localGame) promptPlayerCount() (int, error) {
	for {
		line, err := g.promptLine("How many players? ")
		if err != nil {
			return 0, err
		}
		count, err := strconv.Atoi(line)
		if err != nil || count < 2 {
			fmt.Fprintln(g.out, "Please enter a number of at least 2.")
			continue
		}
		return count, nil
	}
}

func (g *localGame) promptPlayerNames(ctx context.Context, code model.SessionCode, count int) ([]string, error) {
	names := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		for {
			name, err := g.promptLine(fmt.Sprintf("Player %d, enter your name: ", i))
			if err != nil {
				return nil, err
			}
			if _, err := g.app.SessionController.Join(ctx, code, name); err != nil {
				fmt.Fprintf(g.out, "Can't use that name: %s\n", err)
				continue
			}
			names = append(names, strings.TrimSpace(name))
			break
		}
	}
	return names, nil
}

func (g *localGame) promptChoice(name string) (string, error) {
	for {
		line, err := g.promptLine(fmt.Sprintf("%s, enter your choice (rock/paper/scissors): ", name))
		if err != nil {
			return "", err
		}
		if _, err := model.ParseChoice(line); err != nil {
			fmt.Fprintln(g.out, "That's not a valid choice.")
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

func (g *localGame) promptYesNo(prompt string) (bool, error) {
	for {
		line, err := g.promptLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(g.out, "Please answer y or n.")
	}
}

func (g *localGame) promptLine(prompt string) (string, error) {
	fmt.Fprint(g.out, prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return g.in.Text(), nil
}

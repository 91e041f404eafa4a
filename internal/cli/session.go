package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionJoinCmd())
	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionCommitCmd())
	cmd.AddCommand(newSessionRevealCmd())
	cmd.AddCommand(newSessionScoreCmd())
	cmd.AddCommand(newSessionNextCmd())
	cmd.AddCommand(newSessionScoresCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get session details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code> <name>",
		Short: "Join a session as a named player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[1]}
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/players", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <code>",
		Short: "Close the roster and open round 1 commitments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/start", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <code> <name> <digest>",
		Short: "Lock in a commitment digest for the current round",
		Long: `Lock in a commitment digest for the current round.

The digest is the hex BLAKE3 hash of choice and salt concatenated.
Compute it locally with "rps hash <choice> <salt>" so the choice
never leaves your machine before the reveal.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":       args[1],
				"commitment": args[2],
			}
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/commits", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <code> <name> <choice> <salt>",
		Short: "Reveal a committed choice",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":   args[1],
				"choice": args[2],
				"salt":   args[3],
			}
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/reveals", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <code>",
		Short: "Score the current round once all players have revealed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/score", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <code>",
		Short: "Open commitments for the next round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/next-round", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores <code>",
		Short: "Show the accumulated score table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ScoreTable

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/scores", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

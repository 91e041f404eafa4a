package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpsgame/rpsgame-go/internal/commitment"
	"github.com/rpsgame/rpsgame-go/internal/dependencies/random"
	"github.com/rpsgame/rpsgame-go/internal/model"
)

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <choice> [salt]",
		Short: "Compute a commitment digest locally",
		Long: `Compute the BLAKE3 commitment digest for a choice and salt.

The digest is computed entirely locally. If no salt is given a random
one is generated; keep it secret until the reveal phase.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			choice := args[0]
			if _, err := model.ParseChoice(choice); err != nil {
				return err
			}

			var salt string
			if len(args) == 2 {
				salt = args[1]
			} else {
				salt = random.New().Salt()
			}

			out := NewOutput(cfg.Output)
			out.Print(HashResult{
				Choice:     choice,
				Salt:       salt,
				Commitment: commitment.Commit(choice, salt).String(),
			})
			return nil
		},
	}
}

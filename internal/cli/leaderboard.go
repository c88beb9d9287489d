package cli

import (
	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/stats"
)

// leaderboardFixture is the JSON shape accepted by --input for leaderboards.
type leaderboardFixture struct {
	Entries []stats.LeaderboardEntry `json:"entries"`
}

// leaderboardCommand creates the "leaderboard" command.
func (c *CLI) leaderboardCommand() *cobra.Command {
	var opts renderOpts
	var limit int

	cmd := &cobra.Command{
		Use:     "leaderboard <mode>",
		Aliases: []string{"lb"},
		Short:   "Render a leaderboard card",
		Long:    `Render the top players for a game mode (league, 40l, blitz, xp, ar) as a card.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := stats.ParseMode(args[0])
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			var entries []stats.LeaderboardEntry
			if opts.input != "" {
				var fixture leaderboardFixture
				if err := loadFixture(opts.input, &fixture); err != nil {
					return err
				}
				entries = fixture.Entries
			} else {
				client := c.newClient(cfg)
				spinner := newSpinnerWithContext(cmd.Context(), "Fetching "+mode.Title()+" leaderboard")
				spinner.Start()
				entries, err = client.Leaderboard(cmd.Context(), mode, limit)
				spinner.Stop()
				if err != nil {
					return err
				}
			}

			if len(entries) == 0 {
				printWarning("Leaderboard for %s came back empty", mode.Title())
			}

			p := newProgress(c.Logger)
			img, err := c.newRenderer(cfg).Leaderboard(mode, entries, limit)
			if err != nil {
				return err
			}
			p.done("Rendered leaderboard card")

			return writeCard(cfg, &opts, img, "leaderboard-"+string(mode))
		},
	}

	registerRenderFlags(cmd, &opts)
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of rows (max 25)")
	return cmd
}

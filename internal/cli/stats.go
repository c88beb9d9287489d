package cli

import (
	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/stats"
)

// statsCommand creates the "stats" command rendering server-wide counters.
func (c *CLI) statsCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Render the server statistics card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			var serverStats stats.ServerStats
			if opts.input != "" {
				if err := loadFixture(opts.input, &serverStats); err != nil {
					return err
				}
			} else {
				client := c.newClient(cfg)
				spinner := newSpinnerWithContext(cmd.Context(), "Fetching server statistics")
				spinner.Start()
				serverStats, err = client.ServerStats(cmd.Context())
				spinner.Stop()
				if err != nil {
					return err
				}
			}

			p := newProgress(c.Logger)
			img, err := c.newRenderer(cfg).ServerStats(serverStats)
			if err != nil {
				return err
			}
			p.done("Rendered server stats card")

			return writeCard(cfg, &opts, img, "server-stats")
		},
	}

	registerRenderFlags(cmd, &opts)
	return cmd
}

package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/render/card"
	"github.com/kanau/tetracard/pkg/stats"
)

// profileFixture is the JSON shape accepted by --input for profile cards.
type profileFixture struct {
	User   stats.User           `json:"user"`
	League *stats.LeagueSummary `json:"league"`
}

// userCommand creates the "user" command rendering a profile card.
func (c *CLI) userCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "user <username>",
		Short: "Render a player profile card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProfile(cmd.Context(), args[0], &opts, false)
		},
	}
	registerRenderFlags(cmd, &opts)
	return cmd
}

// leagueCommand creates the "league" command rendering the ranked-focused
// variant of the profile card.
func (c *CLI) leagueCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "league <username>",
		Short: "Render a ranked-league card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProfile(cmd.Context(), args[0], &opts, true)
		},
	}
	registerRenderFlags(cmd, &opts)
	return cmd
}

func (c *CLI) runProfile(ctx context.Context, username string, opts *renderOpts, leagueFocus bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	var fixture profileFixture
	if opts.input != "" {
		if err := loadFixture(opts.input, &fixture); err != nil {
			return err
		}
	} else {
		fixture.User, fixture.League, err = c.fetchProfile(ctx, cfg, username)
		if err != nil {
			return err
		}
	}

	if leagueFocus && fixture.League == nil {
		printWarning("%s has no ranked history; rendering the plain profile card", fixture.User.Username)
	}

	p := newProgress(c.Logger)
	renderer := c.newRenderer(cfg)

	var req card.Request
	if leagueFocus {
		req = card.LeagueCardRequest{User: fixture.User, League: fixture.League}
	} else {
		req = card.UserCardRequest{User: fixture.User, League: fixture.League}
	}
	img, err := renderer.Render(req)
	if err != nil {
		return err
	}
	p.done("Rendered profile card")

	return writeCard(cfg, opts, img, strings.ToLower(fixture.User.Username))
}

// fetchProfile pulls the user record and ranked summary from the API,
// showing a spinner while the requests run.
func (c *CLI) fetchProfile(ctx context.Context, cfg *Config, username string) (stats.User, *stats.LeagueSummary, error) {
	client := c.newClient(cfg)
	spinner := newSpinnerWithContext(ctx, "Fetching "+username)
	spinner.Start()
	defer spinner.Stop()

	user, err := client.User(ctx, username)
	if err != nil {
		return stats.User{}, nil, err
	}
	league, err := client.League(ctx, username)
	if err != nil {
		return stats.User{}, nil, err
	}

	loggerFromContext(ctx).Debug("fetched profile", "username", user.Username, "ranked", league != nil)
	return user, league, nil
}

package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/core/eventbus"
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/enroll"
	"github.com/colonyops/enroll/internal/printer"
)

type OAuthCmd struct {
	flags *Flags
	app   *enroll.App
}

// NewOAuthCmd creates a new oauth command.
func NewOAuthCmd(flags *Flags, app *enroll.App) *OAuthCmd {
	return &OAuthCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the oauth command to the application.
func (cmd *OAuthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "oauth",
		Usage:     "Sign up with the configured OAuth provider",
		UsageText: "enroll oauth",
		Description: `Runs the federated sign-up without filling the form.

The provider's consent page is printed (and opened in a browser when
oauth.open_browser is set). Paste the authorization code shown after
approving access. Requires an oauth provider in the config file.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *OAuthCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	store := cmd.app.NewStore()
	store.Dispatch(ctx, signup.OAuthPressed{})

	st := store.State()
	if st.LastResult != signup.ResultSucceeded {
		p.Errorf("%s", st.SubmissionError)
		return cli.Exit("", 1)
	}

	p.Successf("%s", eventbus.MsgOAuthInitiated)
	return nil
}

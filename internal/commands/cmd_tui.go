package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/enroll"
	"github.com/colonyops/enroll/internal/printer"
	"github.com/colonyops/enroll/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *enroll.App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *enroll.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	store := cmd.app.NewStore()

	m := tui.New(ctx, tui.Options{
		Store:        store,
		Bus:          cmd.app.Bus,
		OAuthEnabled: cmd.app.OAuth != nil,
	})

	log.Debug().Str("form_id", store.State().ID).Msg("starting sign-up form")

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	st := store.State()
	out := printer.Ctx(ctx)
	switch st.LastResult {
	case signup.ResultSucceeded:
		out.Successf("Sign-up completed (form %s)", st.ID)
	case signup.ResultFailed:
		out.Errorf("%s", st.SubmissionError)
		return cli.Exit("", 1)
	}

	return nil
}

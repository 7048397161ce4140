package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/enroll"
	"github.com/colonyops/enroll/pkg/iojson"
)

type SubmitCmd struct {
	flags *Flags
	app   *enroll.App
	fr    *iojson.FileReader[FormInput]
}

// SubmitOutput is written to stdout by the submit command.
type SubmitOutput struct {
	FormID  string         `json:"form_id"`
	Role    signup.Role    `json:"role"`
	Outcome signup.Outcome `json:"outcome"`
	Result  signup.Result  `json:"result"`
	Message string         `json:"message,omitempty"`
	Errors  signup.Errors  `json:"errors,omitempty"`
}

// NewSubmitCmd creates a new submit command.
func NewSubmitCmd(flags *Flags, app *enroll.App) *SubmitCmd {
	return &SubmitCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[FormInput]{},
	}
}

// Register adds the submit command to the application.
func (cmd *SubmitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "submit",
		Usage: "Submit a sign-up form from JSON input",
		UsageText: `enroll submit [options]

Read from stdin:
  enroll submit < form.json

Read from file:
  enroll submit -f form.json`,
		Description: `Fills a new form with the input values and presses submit.

The form is validated first. A valid form is handed to the configured
submission backend (see 'submission' in the config file) and the command
waits for its answer. The command exits non-zero unless the account was
created.`,
		Flags:  []cli.Flag{cmd.fr.Flag()},
		Action: cmd.run,
	})

	return app
}

func (cmd *SubmitCmd) run(ctx context.Context, c *cli.Command) error {
	input, err := cmd.fr.Read()
	if err != nil {
		return inputError(c, "read input", err)
	}

	role, values, err := input.Parse()
	if err != nil {
		return inputError(c, "invalid input", err)
	}

	store := cmd.app.NewStore()
	outcome := fillAndSubmit(ctx, store, role, values)

	st := store.State()
	log.Debug().
		Str("form_id", st.ID).
		Str("outcome", string(outcome)).
		Str("result", string(st.LastResult)).
		Msg("submit command finished")

	out := SubmitOutput{
		FormID:  st.ID,
		Role:    st.Role,
		Outcome: outcome,
		Result:  st.LastResult,
		Message: st.SubmissionError,
		Errors:  st.Errors,
	}
	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
		return err
	}

	if st.LastResult != signup.ResultSucceeded {
		return cli.Exit("", 1)
	}
	return nil
}

// fillAndSubmit replays the input as rendering events, in the order a user
// filling the form would produce them.
func fillAndSubmit(ctx context.Context, store *signup.Store, role signup.Role, values signup.Values) signup.Outcome {
	store.Dispatch(ctx, signup.RoleSelected{Role: role})
	for _, f := range signup.Fields() {
		if v := values[f]; v != "" {
			store.Dispatch(ctx, signup.FieldChanged{Field: f, Value: v})
		}
	}
	return store.Dispatch(ctx, signup.SubmitPressed{})
}

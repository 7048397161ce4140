package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/pkg/iojson"
)

type ValidateCmd struct {
	flags *Flags
	fr    *iojson.FileReader[FormInput]
}

// ValidateOutput is written to stdout by the validate command.
type ValidateOutput struct {
	Valid  bool          `json:"valid"`
	Role   signup.Role   `json:"role"`
	Errors signup.Errors `json:"errors"`
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{
		flags: flags,
		fr:    &iojson.FileReader[FormInput]{},
	}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "validate",
		Usage: "Validate a sign-up form from JSON input",
		UsageText: `enroll validate [options]

Read from stdin:
  echo '{"role":"parent","values":{"firstName":"Asha"}}' | enroll validate

Read from file:
  enroll validate -f form.json`,
		Description: `Checks a form against the rules of its role without submitting it.

Only fields relevant to the role are checked. The output lists one message
per invalid field; the command exits non-zero when the form is invalid.`,
		Flags:  []cli.Flag{cmd.fr.Flag()},
		Action: cmd.run,
	})

	return app
}

func (cmd *ValidateCmd) run(_ context.Context, c *cli.Command) error {
	input, err := cmd.fr.Read()
	if err != nil {
		return inputError(c, "read input", err)
	}

	role, values, err := input.Parse()
	if err != nil {
		return inputError(c, "invalid input", err)
	}

	errs := signup.Validate(role, values)
	out := ValidateOutput{
		Valid:  len(errs) == 0,
		Role:   role,
		Errors: errs,
	}

	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
		return err
	}
	if !out.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

// inputError reports err as a JSON error document on the error writer and
// fails the command. Field errors are listed per field under data.
func inputError(c *cli.Command, msg string, err error) error {
	data := map[string]any{}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			data[fe.Field] = fe.Err.Error()
		}
	} else {
		data["error"] = err.Error()
	}

	if werr := iojson.WriteError(c.Root().ErrWriter, msg, data); werr != nil {
		return werr
	}
	return cli.Exit("", 2)
}

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/core/styles"
	"github.com/colonyops/enroll/pkg/iojson"
)

type FieldsCmd struct {
	flags  *Flags
	format string
}

// FieldInfo describes one form field for a role.
type FieldInfo struct {
	Name        signup.Field    `json:"name"`
	Label       string          `json:"label"`
	Kind        signup.Kind     `json:"kind"`
	Placeholder string          `json:"placeholder,omitempty"`
	Options     []signup.Option `json:"options,omitempty"`
}

// RoleFields lists the fields a role must fill in.
type RoleFields struct {
	Role   signup.Role `json:"role"`
	Label  string      `json:"label"`
	Fields []FieldInfo `json:"fields"`
}

// NewFieldsCmd creates a new fields command.
func NewFieldsCmd(flags *Flags) *FieldsCmd {
	return &FieldsCmd{flags: flags}
}

// Register adds the fields command to the application.
func (cmd *FieldsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fields",
		Usage:     "List the fields of the sign-up form",
		UsageText: "enroll fields [options] [role]",
		Description: `Prints the fields each role must fill in, with their input kind and
choices. Without a role, every role is listed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, markdown)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		ShellComplete: RoleCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *FieldsCmd) run(_ context.Context, c *cli.Command) error {
	roles := signup.Roles()
	if c.Args().Present() {
		r, err := signup.ParseRole(c.Args().First())
		if err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(roleNames(), ", "))
		}
		roles = []signup.Role{r}
	}

	schema := make([]RoleFields, 0, len(roles))
	for _, r := range roles {
		schema = append(schema, describeRole(r))
	}

	w := c.Root().Writer
	switch cmd.format {
	case "json":
		return iojson.WriteWith(w, c.Root().ErrWriter, schema)
	case "markdown":
		return writeMarkdown(w, fieldsMarkdown(schema))
	case "text", "":
		_, err := fmt.Fprintln(w, fieldsText(schema))
		return err
	default:
		return fmt.Errorf("unknown format %q (available: text, json, markdown)", cmd.format)
	}
}

func describeRole(r signup.Role) RoleFields {
	fields := signup.FieldsFor(r)
	out := RoleFields{
		Role:   r,
		Label:  r.Label(),
		Fields: make([]FieldInfo, 0, len(fields)),
	}
	for _, f := range fields {
		out.Fields = append(out.Fields, FieldInfo{
			Name:        f,
			Label:       f.Label(),
			Kind:        f.Kind(),
			Placeholder: f.Placeholder(),
			Options:     f.Options(r),
		})
	}
	return out
}

func roleNames() []string {
	names := make([]string, 0, len(signup.Roles()))
	for _, r := range signup.Roles() {
		names = append(names, string(r))
	}
	return names
}

func optionValues(opts []signup.Option) string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return strings.Join(values, ", ")
}

func fieldsText(schema []RoleFields) string {
	sections := make([]string, 0, len(schema))
	for _, rf := range schema {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(styles.DividerStyle).
			Headers("FIELD", "LABEL", "KIND", "CHOICES")
		for _, f := range rf.Fields {
			t.Row(string(f.Name), f.Label, string(f.Kind), optionValues(f.Options))
		}

		sections = append(sections, styles.CommandHeaderStyle.Render(rf.Label)+"\n"+t.Render())
	}
	return strings.Join(sections, "\n\n")
}

func fieldsMarkdown(schema []RoleFields) string {
	var b strings.Builder
	b.WriteString("# Sign-up fields\n")
	for _, rf := range schema {
		fmt.Fprintf(&b, "\n## %s\n\n", rf.Label)
		b.WriteString("| Field | Label | Kind | Choices |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, f := range rf.Fields {
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", f.Name, f.Label, f.Kind, optionValues(f.Options))
		}
	}
	return b.String()
}

// writeMarkdown renders md with glamour when stdout is a terminal and writes
// it unchanged otherwise.
func writeMarkdown(w io.Writer, md string) error {
	fd := int(os.Stdout.Fd())
	if w != os.Stdout || !term.IsTerminal(fd) {
		_, err := io.WriteString(w, md)
		return err
	}

	width := 100
	if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
		width = tw
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = io.WriteString(w, rendered)
	return err
}

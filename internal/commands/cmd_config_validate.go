package commands

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// ConfigIssue is one invalid configuration field.
type ConfigIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "enroll config validate [options]",
				Description: "Validates the configuration file, checking the submission command template, OAuth settings, and the theme.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	issues := configIssues(cfg.ValidateDeep(cmd.flags.ConfigPath))
	warnings := cfg.Warnings()

	if cmd.format == "json" {
		if err := cmd.outputJSON(c, issues, warnings); err != nil {
			return err
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), issues, warnings)
	}

	if len(issues) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// configIssues flattens a validation error into one issue per field.
func configIssues(err error) []ConfigIssue {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []ConfigIssue{{Field: "config", Message: err.Error()}}
	}

	issues := make([]ConfigIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, ConfigIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return issues
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, issues []ConfigIssue, warnings []config.ValidationWarning) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []ConfigIssue              `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    len(issues) == 0,
		Errors:   issues,
		Warnings: warnings,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, issues []ConfigIssue, warnings []config.ValidationWarning) {
	for _, warn := range warnings {
		p.Warnf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			p.Printf("  Item: %s", warn.Item)
		}
	}

	for _, issue := range issues {
		p.Errorf("%s: %s", issue.Field, issue.Message)
	}

	p.Printf("")
	if len(issues) == 0 {
		p.Successf("Configuration is valid")
		return
	}
	p.Errorf("%d error(s) found", len(issues))
}

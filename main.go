package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/collab/oauth"
	"github.com/colonyops/enroll/internal/commands"
	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/core/eventbus"
	"github.com/colonyops/enroll/internal/core/logging"
	"github.com/colonyops/enroll/internal/core/styles"
	"github.com/colonyops/enroll/internal/enroll"
	"github.com/colonyops/enroll/internal/printer"
	"github.com/colonyops/enroll/pkg/executil"
	"github.com/colonyops/enroll/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads them
	// from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		logCloser func()
		busCancel context.CancelFunc
		enrollApp = &enroll.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "enroll",
		Usage:     "Create an account from the terminal",
		UsageText: "enroll [global options] command [command options]",
		Description: `Enroll collects the sign-up details of a student, teacher, or parent,
validates them against the rules of the selected role, and hands them to the
configured submission backend.

Run 'enroll' with no arguments to open the interactive sign-up form.
Run 'enroll fields' to see which fields each role must fill in.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, fatal, disabled)",
				Sources:     cli.EnvVars("ENROLL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (the interactive form defaults to the state directory, commands to stderr)",
				Sources:     cli.EnvVars("ENROLL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.BoolFlag{
				Name:        "log-pretty",
				Usage:       "write human-readable log lines instead of JSON",
				Sources:     cli.EnvVars("ENROLL_LOG_PRETTY"),
				Destination: &flags.LogPretty,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ENROLL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			interactive := c.Args().Len() == 0

			// The form owns the terminal, so it always logs to a file.
			logFile := flags.LogFile
			if logFile == "" && interactive {
				logFile = commands.DefaultLogFile()
			}

			logger, closer, err := logutils.New(logutils.Options{
				Level:  flags.LogLevel,
				File:   logFile,
				Pretty: flags.LogPretty,
			})
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			ctx = printer.NewContext(ctx, printer.New(os.Stderr))

			cfg, err := config.Read(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// config validate reports problems itself
			if c.Args().First() == "config" {
				return ctx, nil
			}
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid config: %w", err)
			}

			// Apply configured theme (validation ensures name is valid)
			styles.Apply(cfg.TUI.Theme)

			bus := eventbus.New(64)
			busCtx, cancel := context.WithCancel(context.Background())
			busCancel = cancel
			go bus.Start(busCtx)

			eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
			eventbus.NewNotificationRouter(bus).Register()

			built, err := enroll.NewApp(enroll.Deps{
				Config:   cfg,
				Bus:      bus,
				Exec:     &executil.RealExecutor{},
				Prompter: oauth.TerminalPrompter(),
			})
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*enrollApp = *built

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if busCancel != nil {
				busCancel()
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, enrollApp)

	app = commands.NewFieldsCmd(flags).Register(app)
	app = commands.NewValidateCmd(flags).Register(app)
	app = commands.NewSubmitCmd(flags, enrollApp).Register(app)
	app = commands.NewOAuthCmd(flags, enrollApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'enroll --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

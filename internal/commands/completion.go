package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/enroll/internal/core/signup"
)

// RoleCompleter returns a ShellCompleteFunc that suggests role names as
// positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func RoleCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, r := range signup.Roles() {
			_, _ = fmt.Fprintln(w, r)
		}
	}
}

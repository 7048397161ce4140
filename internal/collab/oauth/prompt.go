package oauth

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/enroll/internal/core/styles"
)

// ErrCancelled is returned when the user aborts the code prompt.
var ErrCancelled = errors.New("Google sign up was cancelled")

// TerminalPrompter asks for the authorization code with a huh form.
func TerminalPrompter() Prompter {
	return PrompterFunc(func(ctx context.Context, authURL string) (string, error) {
		var code string

		err := huh.NewForm(
			huh.NewGroup(
				huh.NewNote().
					Title(styles.IconGoogle+" Sign up with Google").
					Description("Open this address in a browser and approve access:\n\n"+authURL),
				huh.NewInput().
					Title("Authorization code").
					Description("Paste the code shown after approving").
					Validate(validateCode).
					Value(&code),
			),
		).WithTheme(styles.FormTheme()).RunWithContext(ctx)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return "", ErrCancelled
			}
			return "", err
		}

		return code, nil
	})
}

func validateCode(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrNoCode
	}
	return nil
}

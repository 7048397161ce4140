// Package logging provides zerolog helpers shared by enroll components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component identifier under the
// "cmp" key. Events logged with .Ctx(ctx) also pick up form_id and role.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}

// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/enroll/internal/core/styles"
)

type ctxKey struct{}

// Printer writes one status line per call.
type Printer struct {
	w io.Writer
}

// New returns a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stderr)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.NotifyInfoStyle, styles.IconInfo, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.NotifyWarnStyle, styles.IconWarning, format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle, styles.IconCheck, format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, styles.IconCross, format, args...)
}

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, style.Render(icon)+" "+fmt.Sprintf(format, args...))
}

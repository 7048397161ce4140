package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/enroll/internal/core/notify"
	"github.com/colonyops/enroll/internal/core/styles"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastController manages the lifecycle of active toast notifications.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    defaultToastTTL,
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// Ticking reports whether a tick loop is already scheduled.
func (c *ToastController) Ticking() bool { return c.ticking }

// SetTicking records whether a tick loop is scheduled.
func (c *ToastController) SetTicking(v bool) { c.ticking = v }

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the current active toast slice.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// View renders the toast stack, oldest first.
func (c *ToastController) View() string {
	if len(c.toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		rendered = append(rendered, renderToast(t))
	}
	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = styles.IconCross
		style = styles.NotifyErrorStyle
	case notify.LevelWarning:
		icon = styles.IconWarning
		style = styles.NotifyWarnStyle
	default:
		icon = styles.IconCheck
		style = styles.NotifyInfoStyle
	}

	return style.Render(icon + " " + t.notification.Message)
}

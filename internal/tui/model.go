// Package tui renders the sign-up form as an interactive terminal program.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/enroll/internal/core/eventbus"
	"github.com/colonyops/enroll/internal/core/notify"
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/internal/core/styles"
	"github.com/colonyops/enroll/internal/tui/components/form"
)

const helpText = "tab/shift+tab move • ←/→ choose • ctrl+s create account • ctrl+g google • ctrl+x dismiss • ctrl+c quit"

// Options configures the sign-up model.
type Options struct {
	Store *signup.Store
	// Bus is optional. When set, published notifications are shown as toasts.
	Bus *eventbus.EventBus
	// OAuthEnabled hands the terminal to the federated sign-up while it runs
	// so it can prompt for the authorization code.
	OAuthEnabled bool
}

// Model is the bubbletea model of the sign-up form. It never mutates form
// state itself: every edit is dispatched to the store and the view is
// rebuilt from the state the store reports.
type Model struct {
	ctx   context.Context
	store *signup.Store
	oauth bool

	state   signup.FormState
	dialog  *form.Dialog
	spinner spinner.Model
	toasts  *ToastController
	notes   *NotificationBuffer
	changes chan struct{}

	width    int
	quitting bool
}

// New creates the model and subscribes it to the store and the bus.
func New(ctx context.Context, opts Options) Model {
	changes := make(chan struct{}, 1)
	opts.Store.OnStateChange(func(signup.FormState) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	notes := NewNotificationBuffer()
	if opts.Bus != nil {
		opts.Bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
			notes.Push(notify.Notification{Level: p.Level, Message: p.Message})
		})
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	st := opts.Store.State()
	return Model{
		ctx:     ctx,
		store:   opts.Store,
		oauth:   opts.OAuthEnabled,
		state:   st,
		dialog:  newSignupDialog(st.Role, st.Values),
		spinner: sp,
		toasts:  NewToastController(),
		notes:   notes,
		changes: changes,
	}
}

// State returns the state the model last rendered.
func (m Model) State() signup.FormState { return m.state }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.notes.WaitForSignal())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case stateChangedMsg:
		m.refresh()
		return m, m.waitForChange()

	case submitDoneMsg:
		m.refresh()
		return m, nil

	case oauthDoneMsg:
		m.refresh()
		if msg.err != nil {
			m.toasts.Push(notify.Notification{Level: notify.LevelError, Message: msg.err.Error()})
			return m, m.startToastTicks()
		}
		return m, nil

	case drainNotificationsMsg:
		for _, n := range m.notes.Drain() {
			m.toasts.Push(n)
		}
		return m, tea.Batch(m.notes.WaitForSignal(), m.startToastTicks())

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		return m, m.submit()
	case "ctrl+g":
		return m, m.federated()
	case "ctrl+x":
		m.toasts.Dismiss()
		return m, nil
	}

	before := m.dialog.Values()
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if m.dialog.Cancelled() {
		m.quitting = true
		return m, tea.Quit
	}

	m.sync(before)

	if m.dialog.Submitted() {
		return m, tea.Batch(cmd, m.submit())
	}
	return m, cmd
}

// sync dispatches every dialog value that changed since before. A role change
// rebuilds the dialog for the new role's fields.
func (m *Model) sync(before map[string]string) {
	after := m.dialog.Values()

	if after[roleFieldName] != before[roleFieldName] {
		if r := signup.Role(after[roleFieldName]); r.Valid() {
			m.store.SetRole(r)
			st := m.store.State()
			m.dialog = newSignupDialog(st.Role, st.Values)
		}
		m.refresh()
		return
	}

	changed := false
	for name, v := range after {
		if name == roleFieldName || v == before[name] {
			continue
		}
		m.store.SetField(signup.Field(name), v)
		changed = true
	}
	if changed {
		m.refresh()
	}
}

// refresh copies the store state into the model and the dialog.
func (m *Model) refresh() {
	m.state = m.store.State()

	if m.dialog.Values()[roleFieldName] != string(m.state.Role) {
		focus := m.dialog.FocusedName()
		m.dialog = newSignupDialog(m.state.Role, m.state.Values)
		m.dialog.FocusName(focus)
	}

	errs := make(map[string]string, len(m.state.Errors))
	for f, msg := range m.state.Errors {
		errs[string(f)] = msg
	}
	m.dialog.SetErrors(errs)
}

func (m *Model) submit() tea.Cmd {
	if m.state.Busy() {
		return nil
	}
	store, ctx := m.store, m.ctx
	return tea.Batch(
		func() tea.Msg { return submitDoneMsg{outcome: store.AttemptSubmit(ctx)} },
		m.spinner.Tick,
	)
}

func (m *Model) federated() tea.Cmd {
	if m.state.Busy() {
		return nil
	}
	store, ctx := m.store, m.ctx

	// Without a configured provider the store reports the failure on its own;
	// there is nothing to prompt for.
	if !m.oauth {
		return func() tea.Msg { return oauthDoneMsg{outcome: store.AttemptOAuth(ctx)} }
	}

	run := &federatedSignUp{fn: func() signup.Outcome { return store.AttemptOAuth(ctx) }}
	return tea.Exec(run, func(err error) tea.Msg {
		return oauthDoneMsg{outcome: run.outcome, err: err}
	})
}

func (m *Model) startToastTicks() tea.Cmd {
	if !m.toasts.HasToasts() || m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		<-changes
		return stateChangedMsg{}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		styles.TitleStyle.Render(styles.IconUser + " Create an account"),
		styles.SubtitleStyle.Render("Create your account by selecting your role"),
		"",
		m.dialog.View(),
		"",
	}

	if m.state.HasSubmissionError() {
		sections = append(sections, styles.ErrorBannerStyle.Render(styles.IconWarning+" "+m.state.SubmissionError), "")
	}

	sections = append(sections, m.buttons(), "", styles.HelpStyle.Render(helpText))

	body := styles.FrameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if toasts := m.toasts.View(); toasts != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, toasts)
	}
	return body
}

func (m Model) buttons() string {
	submit := "Create account"
	google := styles.IconGoogle + " Sign up with Google"

	switch {
	case m.state.SubmissionInFlight:
		submit = m.spinner.View() + " Creating account..."
	case m.state.OAuthInFlight:
		google = m.spinner.View() + " Signing up with Google..."
	}

	submitStyle, googleStyle := styles.ButtonFocused, styles.ButtonStyle
	if m.state.Busy() {
		submitStyle, googleStyle = styles.ButtonDisabled, styles.ButtonDisabled
	}

	return strings.Join([]string{submitStyle.Render(submit), googleStyle.Render(google)}, "  ")
}

// federatedSignUp runs the federated sign-up as a tea.ExecCommand so the
// program releases the terminal while the provider prompt is shown.
type federatedSignUp struct {
	fn      func() signup.Outcome
	outcome signup.Outcome
}

func (f *federatedSignUp) Run() error {
	f.outcome = f.fn()
	return nil
}

func (f *federatedSignUp) SetStdin(io.Reader)  {}
func (f *federatedSignUp) SetStdout(io.Writer) {}
func (f *federatedSignUp) SetStderr(io.Writer) {}

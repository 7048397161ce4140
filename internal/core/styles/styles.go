// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Banner is printed above interactive prompts.
const Banner = "enroll · create your account"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	BannerStyle        lipgloss.Style
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style

	// TUI shared styles.
	FrameStyle       lipgloss.Style
	TitleStyle       lipgloss.Style
	SubtitleStyle    lipgloss.Style
	RoleTabStyle     lipgloss.Style
	RoleTabActive    lipgloss.Style
	SpinnerStyle     lipgloss.Style
	ErrorBannerStyle lipgloss.Style
	ButtonStyle      lipgloss.Style
	ButtonFocused    lipgloss.Style
	ButtonDisabled   lipgloss.Style
	NotifyInfoStyle  lipgloss.Style
	NotifyWarnStyle  lipgloss.Style
	NotifyErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	BannerStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	FrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	RoleTabStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)
	RoleTabActive = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Error).
		PaddingLeft(1)
	ButtonStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Surface).
		Padding(0, 2)
	ButtonFocused = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true).
		Padding(0, 2)
	ButtonDisabled = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 2)
	NotifyInfoStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	NotifyWarnStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	NotifyErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	FormFieldStyle = lipgloss.NewStyle().
		PaddingLeft(2)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
}

// Apply switches to the named theme. Unknown names fall back to the default.
func Apply(name string) {
	p, ok := GetPalette(name)
	if !ok {
		p = themes[DefaultTheme]
	}
	SetTheme(p)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// FormTheme returns a huh theme matching the active palette.
func FormTheme() *huh.Theme {
	p := CurrentPalette
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(p.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.Error)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p.Secondary)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p.Secondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(p.Muted)

	t.Blurred = t.Focused
	t.Blurred.Title = t.Blurred.Title.Foreground(p.Foreground).Bold(false)

	return t
}

func colorPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	p := CurrentPalette

	fg := colorPtr(p.Foreground)
	primary := colorPtr(p.Primary)
	secondary := colorPtr(p.Secondary)
	muted := colorPtr(p.Muted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = colorPtr(p.Surface)
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}

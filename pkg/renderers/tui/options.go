package tui

import (
	"github.com/goliatone/go-orderform/pkg/controller"
)

// Theme captures the message prefixes the session prints. Colours come from
// the lipgloss styles in styles.go.
type Theme struct {
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
}

// DefaultTheme returns the prefixes used when no theme is configured.
func DefaultTheme() Theme {
	return Theme{
		InfoPrefix:    "•",
		ErrorPrefix:   "✗",
		SuccessPrefix: "✓",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithController drives an existing controller instead of a fresh one.
func WithController(ctrl *controller.Controller) Option {
	return func(s *Session) {
		if ctrl != nil {
			s.ctrl = ctrl
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithStyles replaces the lipgloss styles.
func WithStyles(styles Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

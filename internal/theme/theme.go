package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Row               *lipgloss.Style
	RowIndicator      *lipgloss.Style
	SelectedRow       *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Feedback          *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	CommandPrompt     *lipgloss.Style
	PromptBanner      *lipgloss.Style
	HelpTitle         *lipgloss.Style
	HelpBody          *lipgloss.Style
	RentalDetail      *lipgloss.Style
}

var defaultStyles = Styles{
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	RowIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Feedback: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	CommandPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PromptBanner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	HelpTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	HelpBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	RentalDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

package live

import "github.com/charmbracelet/lipgloss"

const (
	colorHeader  = lipgloss.Color("33")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("220")
	colorError   = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("244")
	colorButton  = lipgloss.Color("238")
	colorFocus   = lipgloss.Color("33")
	colorLabel   = lipgloss.Color("230")
)

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

// renderButton draws a control label, highlighted when focused.
func renderButton(label string, focused, noColor bool) string {
	if noColor {
		if focused {
			return "[>" + label + "<]"
		}
		return "[ " + label + " ]"
	}
	style := lipgloss.NewStyle().Padding(0, 2).Foreground(colorLabel).Background(colorButton)
	if focused {
		style = style.Bold(true).Background(colorFocus)
	}
	return style.Render(label)
}

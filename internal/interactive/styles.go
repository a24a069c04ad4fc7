package interactive

import "github.com/charmbracelet/lipgloss"

const (
	headerColor = lipgloss.Color("12")
	promptColor = lipgloss.Color("11")
)

type promptStyles struct {
	enabled     bool
	headerStyle lipgloss.Style
	promptStyle lipgloss.Style
}

func newPromptStyles(enabled bool) promptStyles {
	return promptStyles{
		enabled:     enabled,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(headerColor),
		promptStyle: lipgloss.NewStyle().Foreground(promptColor),
	}
}

func (styles promptStyles) header(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.headerStyle.Render(text)
}

func (styles promptStyles) prompt(text string) string {
	if !styles.enabled {
		return text
	}
	return styles.promptStyle.Render(text)
}

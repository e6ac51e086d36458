package items

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sectionSign = '§'

var legacyColors = map[rune]lipgloss.Color{
	'0': lipgloss.Color("0"),
	'1': lipgloss.Color("4"),
	'2': lipgloss.Color("2"),
	'3': lipgloss.Color("6"),
	'4': lipgloss.Color("1"),
	'5': lipgloss.Color("5"),
	'6': lipgloss.Color("3"),
	'7': lipgloss.Color("7"),
	'8': lipgloss.Color("8"),
	'9': lipgloss.Color("12"),
	'a': lipgloss.Color("10"),
	'b': lipgloss.Color("14"),
	'c': lipgloss.Color("9"),
	'd': lipgloss.Color("13"),
	'e': lipgloss.Color("11"),
	'f': lipgloss.Color("15"),
}

// Colored renders section-sign formatted text with terminal styles. On
// terminals without colour support the codes are simply dropped.
func Colored(text string) string {
	var out strings.Builder
	var segment strings.Builder
	style := lipgloss.NewStyle()

	flush := func() {
		if segment.Len() == 0 {
			return
		}
		out.WriteString(style.Render(segment.String()))
		segment.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != sectionSign || i+1 >= len(runes) {
			segment.WriteRune(runes[i])
			continue
		}

		flush()
		i++
		code := runes[i]
		if color, ok := legacyColors[code]; ok {
			style = lipgloss.NewStyle().Foreground(color)
			continue
		}
		switch code {
		case 'l':
			style = style.Bold(true)
		case 'o':
			style = style.Italic(true)
		case 'n':
			style = style.Underline(true)
		case 'm':
			style = style.Strikethrough(true)
		case 'r':
			style = lipgloss.NewStyle()
		}
	}
	flush()

	return out.String()
}

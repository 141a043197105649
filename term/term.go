// Package term renders character formats for terminal previews.
//
// Terminals have no notion of font faces or point sizes, so only effects,
// color and underline presence carry over.  The resulting style degrades
// with the terminal's color profile.
package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aerissecure/charformat"
)

// Style converts f to a lipgloss style.
func Style(f charformat.Format) lipgloss.Style {
	style := lipgloss.NewStyle()

	var e charformat.Effects
	if f.Effects != nil {
		e = *f.Effects
	}
	if e.Has(charformat.Bold) {
		style = style.Bold(true)
	}
	if e.Has(charformat.Italic) {
		style = style.Italic(true)
	}
	if e.Has(charformat.Strikeout) {
		style = style.Strikethrough(true)
	}

	underline := e.Has(charformat.Underline)
	if f.Underline != nil {
		underline = *f.Underline != charformat.UnderlineNone
	}
	if underline {
		style = style.Underline(true)
	}

	if f.TextColor != nil && !e.Has(charformat.AutoColor) {
		style = style.Foreground(lipgloss.Color(f.TextColor.String()))
	}
	return style
}

// Render returns text styled with f.
func Render(f charformat.Format, text string) string {
	return Style(f).Render(text)
}

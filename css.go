package charformat

import (
	"fmt"
	"regexp"
	"strings"
)

var fontFamilySafeRe = regexp.MustCompile(`[^a-zA-Z0-9 ,_-]+`)

// SanitizeFontFamily strips characters that are not safe inside a CSS
// font-family declaration.
func SanitizeFontFamily(s string) string {
	return fontFamilySafeRe.ReplaceAllString(s, "")
}

var cssDecorationStyle = map[UnderlineType]string{
	UnderlineDash:        "dashed",
	UnderlineDashDot:     "dashed",
	UnderlineDashDotDot:  "dashed",
	UnderlineDotted:      "dotted",
	UnderlineDoubleSolid: "double",
	UnderlineWave:        "wavy",
}

// CSS returns inline CSS declarations for the present fields of f.
// Absent fields emit nothing.
func (f Format) CSS() string {
	var b strings.Builder
	if f.FaceName != nil {
		if fam := SanitizeFontFamily(*f.FaceName); fam != "" {
			fmt.Fprintf(&b, "font-family:'%s';", fam)
		}
	}
	if f.Height != nil && *f.Height > 0 {
		fmt.Fprintf(&b, "font-size:%.1fpt;", f.HeightPt())
	}
	if f.TextColor != nil {
		fmt.Fprintf(&b, "color:#%s;", f.TextColor.Hex())
	}

	var e Effects
	if f.Effects != nil {
		e = *f.Effects
	}
	if e.Has(Bold) {
		b.WriteString("font-weight:bold;")
	}
	if e.Has(Italic) {
		b.WriteString("font-style:italic;")
	}

	underline := e.Has(Underline)
	if f.Underline != nil {
		underline = *f.Underline != UnderlineNone
	}
	strike := e.Has(Strikeout)
	switch {
	case underline && strike:
		b.WriteString("text-decoration:underline line-through;")
	case underline:
		b.WriteString("text-decoration:underline;")
	case strike:
		b.WriteString("text-decoration:line-through;")
	}
	if underline && f.Underline != nil {
		if style, ok := cssDecorationStyle[*f.Underline]; ok {
			fmt.Fprintf(&b, "text-decoration-style:%s;", style)
		}
	}

	if f.YOffset != nil {
		switch {
		case *f.YOffset > 0:
			b.WriteString("vertical-align:super;")
		case *f.YOffset < 0:
			b.WriteString("vertical-align:sub;")
		}
	}
	return b.String()
}

package charformat

import "testing"

func TestFormatCSS(t *testing.T) {
	tests := []struct {
		name string
		f    func() Format
		want string
	}{
		{"empty", func() Format { return Format{} }, ""},
		{"full", fullFormat,
			"font-family:'Arial';font-size:12.0pt;color:#FF0000;font-weight:bold;font-style:italic;" +
				"text-decoration:underline;text-decoration-style:wavy;vertical-align:sub;"},
		{"strike and effect underline", func() Format {
			var f Format
			f.SetEffects(Underline | Strikeout)
			return f
		}, "text-decoration:underline line-through;"},
		{"explicit no underline wins over effect", func() Format {
			var f Format
			f.SetEffects(Underline)
			f.SetUnderline(UnderlineNone)
			return f
		}, ""},
		{"superscript and sanitised face", func() Format {
			var f Format
			f.SetYOffset(60)
			f.SetFaceName("Evil'; x:1")
			return f
		}, "font-family:'Evil x1';vertical-align:super;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f().CSS(); got != tt.want {
				t.Errorf("CSS() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

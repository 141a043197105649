package xlsx

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/charformat"
)

func ptr[T any](v T) *T { return &v }

func TestFontFormat(t *testing.T) {
	font := &sml.CT_Font{
		B:         []*sml.CT_BooleanProperty{{}},
		I:         []*sml.CT_BooleanProperty{{ValAttr: ptr(false)}},
		Sz:        []*sml.CT_FontSize{{ValAttr: 12}},
		Color:     []*sml.CT_Color{{RgbAttr: ptr("FFFF0000")}},
		Name:      []*sml.CT_FontName{{ValAttr: "Calibri"}},
		U:         []*sml.CT_UnderlineProperty{{ValAttr: sml.ST_UnderlineValuesDouble}},
		VertAlign: []*sml.CT_VerticalAlignFontProperty{{ValAttr: sharedTypes.ST_VerticalAlignRunSuperscript}},
	}

	var want charformat.Format
	want.SetEffects(charformat.Bold | charformat.Underline)
	want.SetHeight(240)
	want.SetYOffset(80)
	want.SetTextColor(charformat.RGB(255, 0, 0))
	want.SetFaceName("Calibri")
	want.SetUnderline(charformat.UnderlineDoubleSolid)

	if diff := cmp.Diff(want, FontFormat(font, nil)); diff != "" {
		t.Errorf("FontFormat (-want +got):\n%s", diff)
	}
}

func TestFontFormatThemeColor(t *testing.T) {
	font := &sml.CT_Font{
		Color: []*sml.CT_Color{{ThemeAttr: ptr(uint32(4))}},
	}
	theme := func(idx int) (string, bool) {
		if idx == 4 {
			return "4472C4", true
		}
		return "", false
	}

	got := FontFormat(font, theme)
	if got.TextColor == nil || *got.TextColor != charformat.RGB(0x44, 0x72, 0xC4) {
		t.Errorf("TextColor = %v, want #4472C4", got.TextColor)
	}
	if got := FontFormat(font, nil); got.TextColor != nil {
		t.Errorf("unresolved theme color = %v, want absent", *got.TextColor)
	}
}

func TestFontFormatEmpty(t *testing.T) {
	if got := FontFormat(nil, nil); !got.IsEmpty() {
		t.Errorf("FontFormat(nil) = %v", got)
	}
	if got := FontFormat(&sml.CT_Font{}, nil); !got.IsEmpty() {
		t.Errorf("FontFormat(empty) = %v", got)
	}
}

func TestGetFontPropsMissingTables(t *testing.T) {
	wb := spreadsheet.New()
	ss := wb.StyleSheet

	ss.X().Fonts = &sml.CT_Fonts{Font: []*sml.CT_Font{{}}}
	ss.X().CellXfs = &sml.CT_CellXfs{Xf: []*sml.CT_Xf{{FontIdAttr: ptr(uint32(0))}}}
	if GetFontProps(ss, 0) == nil {
		t.Fatal("font not resolved from a complete stylesheet")
	}
	if GetFontProps(ss, 5) != nil {
		t.Error("out of range style resolved a font")
	}

	ss.X().Fonts = nil
	if GetFontProps(ss, 0) != nil {
		t.Error("font resolved without a fonts table")
	}
	ss.X().CellXfs = nil
	if GetFontProps(ss, 0) != nil {
		t.Error("font resolved without a cell formats table")
	}
}

func TestNormalizeColor(t *testing.T) {
	tests := map[string]string{
		"FF112233": "112233",
		"#112233":  "112233",
		"abc":      "abc",
	}
	for in, want := range tests {
		if got := normalizeColor(in); got != want {
			t.Errorf("normalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderSheetsHTML(t *testing.T) {
	var bold charformat.Format
	bold.SetEffects(charformat.Bold)
	sheets := []SheetFormats{{
		Name: "Q<1>",
		Cells: []CellFormat{
			{Ref: "B2", Row: 2, Col: 1, Value: "a&b", Format: bold},
		},
	}}

	out := RenderSheetsHTML(sheets)
	for _, want := range []string{
		`data-name="Q&lt;1&gt;"`,
		`<td data-ref="B2" style="font-weight:bold;">a&amp;b</td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	// Two rows of two columns, one styled.
	if got := strings.Count(out, "<td"); got != 4 {
		t.Errorf("rendered %d cells, want 4", got)
	}
}

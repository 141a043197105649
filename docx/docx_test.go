package docx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/aerissecure/charformat"
)

func TestApplyRunRoundTrip(t *testing.T) {
	doc := document.New()
	run := doc.AddParagraph().AddRun()
	run.AddText("hello")

	var f charformat.Format
	f.SetEffects(charformat.Bold | charformat.Strikeout)
	f.SetHeight(240)
	f.SetTextColor(charformat.RGB(0x12, 0x34, 0x56))
	f.SetFaceName("Arial")
	f.SetUnderline(charformat.UnderlineWave)
	ApplyRun(run.Properties(), f)

	got, valign := RunFormat(run.Properties())
	want := f
	want.SetEffects(charformat.Bold | charformat.Strikeout | charformat.Underline)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunFormat (-want +got):\n%s", diff)
	}
	if valign != "" {
		t.Errorf("VerticalAlign = %q, want empty", valign)
	}
}

func TestApplyRunLeavesAbsentFields(t *testing.T) {
	doc := document.New()
	run := doc.AddParagraph().AddRun()

	var first charformat.Format
	first.SetEffects(charformat.Italic)
	first.SetFaceName("Georgia")
	ApplyRun(run.Properties(), first)

	var second charformat.Format
	second.SetHeight(360)
	ApplyRun(run.Properties(), second)

	got, _ := RunFormat(run.Properties())
	if got.FaceName == nil || *got.FaceName != "Georgia" {
		t.Errorf("FaceName = %v, want Georgia", got.FaceName)
	}
	if got.Effects == nil || *got.Effects != charformat.Italic {
		t.Errorf("Effects = %v, want italic", got.Effects)
	}
	if got.Height == nil || *got.Height != 360 {
		t.Errorf("Height = %v, want 360", got.Height)
	}
}

func TestApplyRunVerticalAlignment(t *testing.T) {
	tests := []struct {
		offset     int32
		wantAlign  string
		wantOffset *int32
	}{
		{50, "superscript", ptr(int32(80))},
		{-50, "subscript", ptr(int32(-80))},
		{0, "baseline", nil},
	}
	for _, tt := range tests {
		doc := document.New()
		run := doc.AddParagraph().AddRun()
		var f charformat.Format
		f.SetHeight(240)
		f.SetYOffset(tt.offset)
		ApplyRun(run.Properties(), f)

		got, valign := RunFormat(run.Properties())
		if valign != tt.wantAlign {
			t.Errorf("offset %d: VerticalAlign = %q, want %q", tt.offset, valign, tt.wantAlign)
		}
		if diff := cmp.Diff(tt.wantOffset, got.YOffset); diff != "" {
			t.Errorf("offset %d: YOffset (-want +got):\n%s", tt.offset, diff)
		}
	}
}

func TestEffectUnderlineWithoutStyle(t *testing.T) {
	doc := document.New()
	run := doc.AddParagraph().AddRun()
	var f charformat.Format
	f.SetEffects(charformat.Underline)
	ApplyRun(run.Properties(), f)

	got, _ := RunFormat(run.Properties())
	if got.Underline == nil || *got.Underline != charformat.UnderlineSolid {
		t.Errorf("Underline = %v, want solid", got.Underline)
	}

	f.SetEffects(0)
	ApplyRun(run.Properties(), f)
	got, _ = RunFormat(run.Properties())
	if got.Underline != nil || got.Effects != nil {
		t.Errorf("cleared run still formatted: %v", got)
	}
}

func TestRunFormatStrikeValue(t *testing.T) {
	tests := []struct {
		name string
		val  *sharedTypes.ST_OnOff
		want charformat.Effects
	}{
		{"no value", nil, charformat.Strikeout},
		{"true", &sharedTypes.ST_OnOff{Bool: ptr(true)}, charformat.Strikeout},
		{"false", &sharedTypes.ST_OnOff{Bool: ptr(false)}, 0},
		{"on", &sharedTypes.ST_OnOff{ST_OnOff1: sharedTypes.ST_OnOff1On}, charformat.Strikeout},
		{"off", &sharedTypes.ST_OnOff{ST_OnOff1: sharedTypes.ST_OnOff1Off}, 0},
	}
	for _, tt := range tests {
		doc := document.New()
		rp := doc.AddParagraph().AddRun().Properties()
		strike := wml.NewCT_OnOff()
		strike.ValAttr = tt.val
		rp.X().Strike = strike

		got, _ := RunFormat(rp)
		if got.Effects == nil {
			t.Errorf("%s: Effects absent", tt.name)
			continue
		}
		if *got.Effects != tt.want {
			t.Errorf("%s: Effects = %v, want %v", tt.name, *got.Effects, tt.want)
		}
	}
}

func TestParseDocumentModel(t *testing.T) {
	doc := document.New()
	heading := doc.AddParagraph()
	heading.SetStyle("Heading2")
	heading.AddRun().AddText("Title")

	para := doc.AddParagraph()
	plain := para.AddRun()
	plain.AddText("plain ")
	bold := para.AddRun()
	bold.AddText("bold")
	var f charformat.Format
	f.SetEffects(charformat.Bold)
	f.SetTextColor(charformat.RGB(255, 0, 0))
	ApplyRun(bold.Properties(), f)

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mdl, err := ParseDocumentModel(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("ParseDocumentModel: %v", err)
	}
	if len(mdl.Blocks) != 2 {
		t.Fatalf("Blocks = %d, want 2", len(mdl.Blocks))
	}
	if lvl := mdl.Blocks[0].Paragraph.HeadingLevel; lvl != 2 {
		t.Errorf("HeadingLevel = %d, want 2", lvl)
	}

	runs := mdl.Runs()
	if len(runs) != 3 {
		t.Fatalf("Runs = %d, want 3", len(runs))
	}
	if !runs[1].Format.IsEmpty() {
		t.Errorf("plain run format = %v", runs[1].Format)
	}
	if diff := cmp.Diff(f, runs[2].Format); diff != "" {
		t.Errorf("bold run format (-want +got):\n%s", diff)
	}

	out := RenderDocumentHTML(mdl)
	for _, want := range []string{"<h2>", "font-weight:bold;", "color:#FF0000;", "<span>plain </span>"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q:\n%s", want, out)
		}
	}
}

func TestHeadingLevel(t *testing.T) {
	tests := map[string]int{
		"Heading1": 1,
		"Heading6": 6,
		"Heading7": 0,
		"Normal":   0,
		"Heading":  0,
	}
	for style, want := range tests {
		if got := headingLevel(style); got != want {
			t.Errorf("headingLevel(%q) = %d, want %d", style, got, want)
		}
	}
}

func ptr[T any](v T) *T { return &v }

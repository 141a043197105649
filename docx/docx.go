package docx

import (
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/aerissecure/charformat"
)

// Word run properties measure font size in half-points; the codec uses
// twips.
const twipsPerHalfPoint = charformat.TwipsPerPoint / 2

var underlineStyles = map[charformat.UnderlineType]wml.ST_Underline{
	charformat.UnderlineNone:        wml.ST_UnderlineNone,
	charformat.UnderlineSolid:       wml.ST_UnderlineSingle,
	charformat.UnderlineDash:        wml.ST_UnderlineDash,
	charformat.UnderlineDashDot:     wml.ST_UnderlineDotDash,
	charformat.UnderlineDashDotDot:  wml.ST_UnderlineDotDotDash,
	charformat.UnderlineDotted:      wml.ST_UnderlineDotted,
	charformat.UnderlineDoubleSolid: wml.ST_UnderlineDouble,
	charformat.UnderlineWave:        wml.ST_UnderlineWave,
}

// ApplyRun writes the present fields of f onto a run's properties.
// Absent fields are left as they are.
//
// Word has no arbitrary baseline offset in the run model we write, so
// YOffset only selects superscript (positive), subscript (negative) or
// baseline (zero).  Protected, Link and AutoColor have no run property and
// are ignored.
func ApplyRun(rp document.RunProperties, f charformat.Format) {
	if f.Effects != nil {
		e := *f.Effects
		rp.SetBold(e.Has(charformat.Bold))
		rp.SetItalic(e.Has(charformat.Italic))
		rp.SetStrikeThrough(e.Has(charformat.Strikeout))
		if f.Underline == nil {
			if e.Has(charformat.Underline) {
				setUnderline(rp, wml.ST_UnderlineSingle)
			} else {
				rp.X().U = nil
			}
		}
	}
	if f.Height != nil {
		rp.SetSize(measurement.Distance(float64(*f.Height)/charformat.TwipsPerPoint) * measurement.Point)
	}
	if f.YOffset != nil {
		switch {
		case *f.YOffset > 0:
			rp.SetVerticalAlignment(sharedTypes.ST_VerticalAlignRunSuperscript)
		case *f.YOffset < 0:
			rp.SetVerticalAlignment(sharedTypes.ST_VerticalAlignRunSubscript)
		default:
			rp.SetVerticalAlignment(sharedTypes.ST_VerticalAlignRunBaseline)
		}
	}
	if f.TextColor != nil {
		c := f.TextColor
		rp.SetColor(color.RGB(c.R, c.G, c.B))
	}
	if f.FaceName != nil {
		rp.SetFontFamily(*f.FaceName)
	}
	if f.Underline != nil {
		setUnderline(rp, underlineStyles[*f.Underline])
	}
}

func setUnderline(rp document.RunProperties, style wml.ST_Underline) {
	u := wml.NewCT_Underline()
	u.ValAttr = style
	rp.X().U = u
}

// RunFormat reads a run's direct formatting.  Properties the run does not
// set are absent.  The second result is the vertical alignment
// ("superscript", "subscript", "baseline" or ""); superscript and
// subscript are also reported as a YOffset of a third of the height.
func RunFormat(rp document.RunProperties) (charformat.Format, string) {
	var f charformat.Format
	x := rp.X()
	if x == nil {
		return f, ""
	}

	if x.B != nil || x.I != nil || x.Strike != nil || x.U != nil {
		var e charformat.Effects
		if rp.IsBold() {
			e |= charformat.Bold
		}
		if rp.IsItalic() {
			e |= charformat.Italic
		}
		if onOff(x.Strike) {
			e |= charformat.Strikeout
		}
		if x.U != nil && x.U.ValAttr != wml.ST_UnderlineNone && x.U.ValAttr != wml.ST_UnderlineUnset {
			e |= charformat.Underline
		}
		f.SetEffects(e)
	}

	if x.Sz != nil && x.Sz.ValAttr.ST_UnsignedDecimalNumber != nil {
		f.SetHeight(int32(*x.Sz.ValAttr.ST_UnsignedDecimalNumber) * twipsPerHalfPoint)
	}
	if x.Color != nil && x.Color.ValAttr.ST_HexColorRGB != nil {
		if c, err := charformat.ParseColor(*x.Color.ValAttr.ST_HexColorRGB); err == nil {
			f.SetTextColor(c)
		}
	}
	if x.RFonts != nil && x.RFonts.AsciiAttr != nil {
		f.SetFaceName(*x.RFonts.AsciiAttr)
	}
	if x.U != nil {
		if u, ok := underlineFromStyle(x.U.ValAttr); ok {
			f.SetUnderline(u)
		}
	}

	var valign string
	if x.VertAlign != nil {
		switch x.VertAlign.ValAttr {
		case sharedTypes.ST_VerticalAlignRunSuperscript:
			valign = "superscript"
		case sharedTypes.ST_VerticalAlignRunSubscript:
			valign = "subscript"
		case sharedTypes.ST_VerticalAlignRunBaseline:
			valign = "baseline"
		}
	}
	if off, ok := verticalOffset(f, valign); ok {
		f.SetYOffset(off)
	}
	return f, valign
}

// onOff reports the value of a toggle property.  A property present
// without a value is on.
func onOff(v *wml.CT_OnOff) bool {
	if v == nil {
		return false
	}
	if v.ValAttr == nil {
		return true
	}
	if v.ValAttr.Bool != nil {
		return *v.ValAttr.Bool
	}
	return v.ValAttr.ST_OnOff1 == sharedTypes.ST_OnOff1On
}

// underlineFromStyle maps a Word underline onto the nearest codec style.
// Heavy and long variants collapse onto their plain counterparts.
func underlineFromStyle(s wml.ST_Underline) (charformat.UnderlineType, bool) {
	switch s {
	case wml.ST_UnderlineNone:
		return charformat.UnderlineNone, true
	case wml.ST_UnderlineSingle, wml.ST_UnderlineWords, wml.ST_UnderlineThick:
		return charformat.UnderlineSolid, true
	case wml.ST_UnderlineDouble:
		return charformat.UnderlineDoubleSolid, true
	case wml.ST_UnderlineDotted, wml.ST_UnderlineDottedHeavy:
		return charformat.UnderlineDotted, true
	case wml.ST_UnderlineDash, wml.ST_UnderlineDashedHeavy, wml.ST_UnderlineDashLong, wml.ST_UnderlineDashLongHeavy:
		return charformat.UnderlineDash, true
	case wml.ST_UnderlineDotDash, wml.ST_UnderlineDashDotHeavy:
		return charformat.UnderlineDashDot, true
	case wml.ST_UnderlineDotDotDash, wml.ST_UnderlineDashDotDotHeavy:
		return charformat.UnderlineDashDotDot, true
	case wml.ST_UnderlineWave, wml.ST_UnderlineWavyHeavy, wml.ST_UnderlineWavyDouble:
		return charformat.UnderlineWave, true
	}
	return 0, false
}

// verticalOffset expresses a vertical alignment as a baseline offset of
// a third of the font height, taking 12pt when the run sets no height.
func verticalOffset(f charformat.Format, valign string) (int32, bool) {
	h := int32(12 * charformat.TwipsPerPoint)
	if f.Height != nil && *f.Height > 0 {
		h = *f.Height
	}
	switch valign {
	case "superscript":
		return h / 3, true
	case "subscript":
		return -h / 3, true
	}
	return 0, false
}

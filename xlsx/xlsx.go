package xlsx

import (
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/ofc/sharedTypes"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/charformat"
)

// GetFontProps returns the font XML struct referenced by a cell style ID, or
// nil when the style has no font or the stylesheet lacks the cell formats
// or fonts tables.
func GetFontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	x := ss.X()
	if x == nil || x.CellXfs == nil || x.Fonts == nil {
		return nil
	}
	if int(styleID) >= len(x.CellXfs.Xf) {
		return nil
	}
	xf := x.CellXfs.Xf[styleID]
	if xf == nil || xf.FontIdAttr == nil {
		return nil
	}
	fontIdx := int(*xf.FontIdAttr)
	if fontIdx >= len(x.Fonts.Font) {
		return nil
	}
	return x.Fonts.Font[fontIdx]
}

// ThemeColorToRGB resolves a theme color index (0-based) to an RGB hex string (e.g., "FFFFFF").
// It does not apply tint. Returns false if the index is invalid or the color cannot be resolved.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return "", false
	}
	clrScheme := themes[0].ThemeElements.ClrScheme

	var clr *dml.CT_Color
	switch themeIdx {
	case 0:
		clr = clrScheme.Dk1
	case 1:
		clr = clrScheme.Lt1
	case 2:
		clr = clrScheme.Dk2
	case 3:
		clr = clrScheme.Lt2
	case 4:
		clr = clrScheme.Accent1
	case 5:
		clr = clrScheme.Accent2
	case 6:
		clr = clrScheme.Accent3
	case 7:
		clr = clrScheme.Accent4
	case 8:
		clr = clrScheme.Accent5
	case 9:
		clr = clrScheme.Accent6
	case 10:
		clr = clrScheme.Hlink
	case 11:
		clr = clrScheme.FolHlink
	default:
		return "", false
	}

	if clr == nil {
		return "", false
	}

	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	} else if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}

// ThemeResolver maps a theme color index to "RRGGBB".
type ThemeResolver func(themeIdx int) (string, bool)

// FontFormat converts a spreadsheet font to a character format.  Fields
// the font does not set are absent.  Theme colors are resolved through
// theme when it is non-nil and dropped otherwise.
func FontFormat(font *sml.CT_Font, theme ThemeResolver) charformat.Format {
	var f charformat.Format
	if font == nil {
		return f
	}

	if len(font.B) > 0 || len(font.I) > 0 || len(font.Strike) > 0 || len(font.U) > 0 {
		var e charformat.Effects
		if boolProp(font.B) {
			e |= charformat.Bold
		}
		if boolProp(font.I) {
			e |= charformat.Italic
		}
		if boolProp(font.Strike) {
			e |= charformat.Strikeout
		}
		if len(font.U) > 0 && font.U[0].ValAttr != sml.ST_UnderlineValuesNone {
			e |= charformat.Underline
		}
		f.SetEffects(e)
	}

	if len(font.Sz) > 0 && font.Sz[0].ValAttr > 0 {
		f.SetHeight(int32(font.Sz[0].ValAttr*charformat.TwipsPerPoint + 0.5))
	}
	if len(font.Color) > 0 {
		c := font.Color[0]
		var hex string
		switch {
		case c.RgbAttr != nil:
			hex = normalizeColor(*c.RgbAttr)
		case c.ThemeAttr != nil && theme != nil:
			hex, _ = theme(int(*c.ThemeAttr))
		}
		if hex != "" {
			if rgb, err := charformat.ParseColor(hex); err == nil {
				f.SetTextColor(rgb)
			}
		}
	}
	if len(font.Name) > 0 && font.Name[0].ValAttr != "" {
		f.SetFaceName(font.Name[0].ValAttr)
	}
	if len(font.U) > 0 {
		switch font.U[0].ValAttr {
		case sml.ST_UnderlineValuesNone:
			f.SetUnderline(charformat.UnderlineNone)
		case sml.ST_UnderlineValuesDouble, sml.ST_UnderlineValuesDoubleAccounting:
			f.SetUnderline(charformat.UnderlineDoubleSolid)
		default:
			// <u/> without a value means single.
			f.SetUnderline(charformat.UnderlineSolid)
		}
	}
	if len(font.VertAlign) > 0 {
		h := int32(11 * charformat.TwipsPerPoint) // Excel's default font size
		if f.Height != nil {
			h = *f.Height
		}
		switch font.VertAlign[0].ValAttr {
		case sharedTypes.ST_VerticalAlignRunSuperscript:
			f.SetYOffset(h / 3)
		case sharedTypes.ST_VerticalAlignRunSubscript:
			f.SetYOffset(-h / 3)
		}
	}
	return f
}

// boolProp reports an OOXML boolean property: present without a value
// means true.
func boolProp(props []*sml.CT_BooleanProperty) bool {
	if len(props) == 0 || props[0] == nil {
		return false
	}
	return props[0].ValAttr == nil || *props[0].ValAttr
}

package charformat

import (
	"fmt"
	"strings"
)

// Format is the abstract character format applied to a selection.
//
// Every field is optional: a nil field means "leave the current value
// alone" on encode and "not reported" on decode.  Absent and
// present-with-zero are different things on encode; the mask written into
// the Record is what carries the difference.
type Format struct {
	Effects   *Effects       // style toggles
	Height    *int32         // font size in twips (1/20 pt)
	YOffset   *int32         // baseline offset in twips, positive raises
	TextColor *Color         // foreground color
	FaceName  *string        // font family, e.g. "Arial"
	Underline *UnderlineType // decorative underline style
}

// SetEffects marks the effects field present with value e.
func (f *Format) SetEffects(e Effects) { f.Effects = &e }

// SetHeight marks the height field present with value twips.
func (f *Format) SetHeight(twips int32) { f.Height = &twips }

// SetYOffset marks the baseline offset present with value twips.
func (f *Format) SetYOffset(twips int32) { f.YOffset = &twips }

// SetTextColor marks the text color present.
func (f *Format) SetTextColor(c Color) { f.TextColor = &c }

// SetFaceName marks the font face present.
func (f *Format) SetFaceName(name string) { f.FaceName = &name }

// SetUnderline marks the underline type present.  Setting UnderlineNone is
// an explicit request to remove the underline, which is not the same as
// leaving the field absent.
func (f *Format) SetUnderline(u UnderlineType) { f.Underline = &u }

// IsEmpty reports whether no field is present.
func (f Format) IsEmpty() bool {
	return f.Effects == nil && f.Height == nil && f.YOffset == nil &&
		f.TextColor == nil && f.FaceName == nil && f.Underline == nil
}

// HeightPt returns the height in points, or 0 when absent.
func (f Format) HeightPt() float64 {
	if f.Height == nil {
		return 0
	}
	return float64(*f.Height) / TwipsPerPoint
}

func (f Format) String() string {
	var parts []string
	if f.Effects != nil {
		parts = append(parts, "Effects: "+f.Effects.String())
	}
	if f.Height != nil {
		parts = append(parts, fmt.Sprintf("Height: %d", *f.Height))
	}
	if f.YOffset != nil {
		parts = append(parts, fmt.Sprintf("YOffset: %d", *f.YOffset))
	}
	if f.TextColor != nil {
		parts = append(parts, "TextColor: "+f.TextColor.Hex())
	}
	if f.FaceName != nil {
		parts = append(parts, fmt.Sprintf("FaceName: %q", *f.FaceName))
	}
	if f.Underline != nil {
		parts = append(parts, "Underline: "+f.Underline.String())
	}
	return strings.Join(parts, ", ")
}

// TwipsPerPoint is the number of height/offset units in one point.
const TwipsPerPoint = 20

// -----------------------------------------------------------------------------
// Effects
// -----------------------------------------------------------------------------

// Effects is the bitset of on/off character styles.  The values are the
// native effect bits and are written to the Record unchanged.
type Effects uint32

const (
	Bold      Effects = 0x00000001
	Italic    Effects = 0x00000002
	Underline Effects = 0x00000004
	Strikeout Effects = 0x00000008
	Protected Effects = 0x00000010
	Link      Effects = 0x00000020
	AutoColor Effects = 0x40000000

	// AllEffects is every bit Effects knows about.  Decoding drops the rest.
	AllEffects = Bold | Italic | Underline | Strikeout | Protected | Link | AutoColor
)

var effectNames = []struct {
	bit  Effects
	name string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underline, "underline"},
	{Strikeout, "strikeout"},
	{Protected, "protected"},
	{Link, "link"},
	{AutoColor, "autocolor"},
}

// Has reports whether every bit of x is set in e.
func (e Effects) Has(x Effects) bool { return e&x == x }

// Names returns the lower-case names of the set bits in a fixed order.
func (e Effects) Names() []string {
	names := make([]string, 0, len(effectNames))
	for _, en := range effectNames {
		if e&en.bit != 0 {
			names = append(names, en.name)
		}
	}
	return names
}

func (e Effects) String() string {
	if e == 0 {
		return "none"
	}
	return strings.Join(e.Names(), "|")
}

// ParseEffect returns the bit named by name (case-insensitive).
func ParseEffect(name string) (Effects, error) {
	for _, en := range effectNames {
		if strings.EqualFold(en.name, name) {
			return en.bit, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// -----------------------------------------------------------------------------
// Color
// -----------------------------------------------------------------------------

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB is shorthand for Color{r, g, b}.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Pack returns the native packed value: red in the lowest byte, then green,
// then blue.
func (c Color) Pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// UnpackColor is the inverse of Pack.  The top byte is ignored.
func UnpackColor(v uint32) Color {
	return Color{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}

// Hex returns the color as "RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string { return "#" + c.Hex() }

// -----------------------------------------------------------------------------
// Underline type
// -----------------------------------------------------------------------------

// UnderlineType is the decorative underline style.
type UnderlineType uint8

const (
	UnderlineNone UnderlineType = iota
	UnderlineSolid
	UnderlineDash
	UnderlineDashDot
	UnderlineDashDotDot
	UnderlineDotted
	UnderlineDoubleSolid
	UnderlineWave
)

var underlineNames = [...]string{
	UnderlineNone:        "none",
	UnderlineSolid:       "solid",
	UnderlineDash:        "dash",
	UnderlineDashDot:     "dashdot",
	UnderlineDashDotDot:  "dashdotdot",
	UnderlineDotted:      "dotted",
	UnderlineDoubleSolid: "double",
	UnderlineWave:        "wave",
}

func (u UnderlineType) String() string {
	if int(u) < len(underlineNames) {
		return underlineNames[u]
	}
	return fmt.Sprintf("UnderlineType(%d)", uint8(u))
}

// ParseUnderline returns the underline type named by name
// (case-insensitive).  "doublesolid" is accepted as an alias of "double".
func ParseUnderline(name string) (UnderlineType, error) {
	if strings.EqualFold(name, "doublesolid") {
		return UnderlineDoubleSolid, nil
	}
	for i, n := range underlineNames {
		if strings.EqualFold(n, name) {
			return UnderlineType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnderline, name)
}

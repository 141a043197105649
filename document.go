package charformat

import (
	"fmt"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// document is the YAML form of a Format.  Keys left out of the document
// stay absent; "effects: []" is present and empty.
type document struct {
	Effects       *[]string `yaml:"effects,omitempty"`
	Height        *int32    `yaml:"height,omitempty"`
	YOffset       *int32    `yaml:"y_offset,omitempty"`
	TextColor     *string   `yaml:"text_color,omitempty"`
	FontFaceName  *string   `yaml:"font_face_name,omitempty"`
	UnderlineType *string   `yaml:"underline_type,omitempty"`
}

// ParseDocument decodes a YAML format document.
//
//	effects: [bold, italic]
//	height: 240
//	y_offset: -40
//	text_color: "#ff0000"
//	font_face_name: Arial
//	underline_type: wave
func ParseDocument(data []byte) (Format, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Format{}, fmt.Errorf("parsing format document: %w", err)
	}

	var f Format
	if doc.Effects != nil {
		var e Effects
		for _, name := range *doc.Effects {
			bit, err := ParseEffect(name)
			if err != nil {
				return Format{}, err
			}
			e |= bit
		}
		f.SetEffects(e)
	}
	f.Height = doc.Height
	f.YOffset = doc.YOffset
	if doc.TextColor != nil {
		c, err := ParseColor(*doc.TextColor)
		if err != nil {
			return Format{}, err
		}
		f.SetTextColor(c)
	}
	f.FaceName = doc.FontFaceName
	if doc.UnderlineType != nil {
		u, err := ParseUnderline(*doc.UnderlineType)
		if err != nil {
			return Format{}, err
		}
		f.SetUnderline(u)
	}
	return f, nil
}

// LoadDocument reads and parses the format document at path.
func LoadDocument(path string) (Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Format{}, err
	}
	f, err := ParseDocument(data)
	if err != nil {
		return Format{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// MarshalDocument encodes f as a YAML format document.
func MarshalDocument(f Format) ([]byte, error) {
	var doc document
	if f.Effects != nil {
		names := f.Effects.Names()
		doc.Effects = &names
	}
	doc.Height = f.Height
	doc.YOffset = f.YOffset
	if f.TextColor != nil {
		s := f.TextColor.String()
		doc.TextColor = &s
	}
	doc.FontFaceName = f.FaceName
	if f.Underline != nil {
		s := f.Underline.String()
		doc.UnderlineType = &s
	}
	return yaml.Marshal(&doc)
}

// ParseColor parses "#RRGGBB" or "#RGB"; the leading '#' is optional.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

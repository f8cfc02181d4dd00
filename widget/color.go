// edgeview - Constraint-based edge decorations for terminal views.
// Copyright (C) 2024 Tulir Asokan
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package widget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"go.mau.fi/tcell"
)

var colorNames []string

func init() {
	colorNames = make([]string, 0, len(tcell.ColorNames))
	for name := range tcell.ColorNames {
		colorNames = append(colorNames, name)
	}
	sort.Strings(colorNames)
}

// ParseColor parses a #rrggbb hex color or a tcell color name.
func ParseColor(str string) (tcell.Color, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "default" {
		return tcell.ColorDefault, nil
	} else if strings.HasPrefix(str, "#") {
		cful, err := colorful.Hex(str)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", str, err)
		}
		r, g, b := cful.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	color, ok := tcell.ColorNames[str]
	if !ok {
		return tcell.ColorDefault, fmt.Errorf("unknown color name %q", str)
	}
	return color, nil
}

// FormatColor returns the name of the color if it has one, and the #rrggbb
// form otherwise.
func FormatColor(color tcell.Color) string {
	if color == tcell.ColorDefault {
		return "default"
	}
	for _, name := range colorNames {
		if tcell.ColorNames[name] == color {
			return name
		}
	}
	r, g, b := color.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// Color is a tcell color that is stored as its name or hex code in config
// files and persisted edge states.
type Color tcell.Color

func (color Color) MarshalText() ([]byte, error) {
	return []byte(FormatColor(tcell.Color(color))), nil
}

func (color *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*color = Color(parsed)
	return nil
}

// RotateHue returns the color with its hue rotated by the given amount of
// degrees. It's used for cycling through edge colors interactively.
func RotateHue(color tcell.Color, degrees float64) tcell.Color {
	r, g, b := color.RGB()
	if r < 0 {
		r, g, b = 0, 0, 0
	}
	h, s, l := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsl()
	if s == 0 {
		// Greys have no hue, start from a saturated red instead.
		s, l = 1, 0.5
	}
	h += degrees
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	nr, ng, nb := colorful.Hsl(h, s, l).Clamped().RGB255()
	return tcell.NewRGBColor(int32(nr), int32(ng), int32(nb))
}

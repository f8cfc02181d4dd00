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
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"go.mau.fi/mauview"
	"go.mau.fi/tcell"
)

// WriteLine writes a single line of text to the screen, aligned inside
// maxWidth cells starting at x. Grapheme clusters that don't fit are cut off.
func WriteLine(screen mauview.Screen, align int, line string, x, y, maxWidth int, style tcell.Style) {
	offsetX := 0
	switch align {
	case mauview.AlignRight:
		offsetX = maxWidth - runewidth.StringWidth(line)
	case mauview.AlignCenter:
		offsetX = (maxWidth - runewidth.StringWidth(line)) / 2
	}
	if offsetX < 0 {
		offsetX = 0
	}
	graphemes := uniseg.NewGraphemes(line)
	for graphemes.Next() {
		cluster := graphemes.Runes()
		chWidth := runewidth.StringWidth(graphemes.Str())
		if chWidth == 0 {
			continue
		} else if offsetX+chWidth > maxWidth {
			break
		}
		screen.SetContent(x+offsetX, y, cluster[0], cluster[1:], style)
		offsetX += chWidth
	}
}

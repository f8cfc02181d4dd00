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
	"strings"

	"go.mau.fi/edgeview/constraint"
)

// Position is the side of a view that an edge is attached to.
type Position int

const (
	Top Position = iota
	Right
	Bottom
	Left
)

// Positions contains every edge position.
var Positions = []Position{Top, Right, Bottom, Left}

var positionNames = [...]string{
	Top:    "top",
	Right:  "right",
	Bottom: "bottom",
	Left:   "left",
}

func (pos Position) valid() bool {
	return pos >= Top && pos <= Left
}

func (pos Position) String() string {
	if !pos.valid() {
		return fmt.Sprintf("Position(%d)", int(pos))
	}
	return positionNames[pos]
}

// ParsePosition parses a position name. The name is case-insensitive.
func ParsePosition(name string) (Position, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for pos, posName := range positionNames {
		if posName == name {
			return Position(pos), nil
		}
	}
	return 0, fmt.Errorf("unknown edge position %q", name)
}

func (pos Position) MarshalText() ([]byte, error) {
	if !pos.valid() {
		return nil, fmt.Errorf("invalid edge position %d", int(pos))
	}
	return []byte(pos.String()), nil
}

func (pos *Position) UnmarshalText(text []byte) (err error) {
	*pos, err = ParsePosition(string(text))
	return
}

func (pos Position) mustBeValid() {
	if !pos.valid() {
		panic(fmt.Sprintf("invalid edge position %d", int(pos)))
	}
}

// HorizontalFormat returns the horizontal constraint format for a view
// attached to this edge.
//
// Top and bottom edges span the full width minus the leading and trailing
// spaces. Right and left edges are only pinned flush to their own side.
func (pos Position) HorizontalFormat(name string, leadingSpace, trailingSpace float64) string {
	pos.mustBeValid()
	switch pos {
	case Top, Bottom:
		return constraint.Pin(constraint.Horizontal, name, leadingSpace, trailingSpace)
	case Right:
		return constraint.PinTrailing(constraint.Horizontal, name)
	default:
		return constraint.PinLeading(constraint.Horizontal, name)
	}
}

// VerticalFormat returns the vertical constraint format for a view attached
// to this edge.
//
// Right and left edges span the full height minus the leading and trailing
// spaces. Top and bottom edges are only pinned flush to their own side.
func (pos Position) VerticalFormat(name string, leadingSpace, trailingSpace float64) string {
	pos.mustBeValid()
	switch pos {
	case Right, Left:
		return constraint.Pin(constraint.Vertical, name, leadingSpace, trailingSpace)
	case Top:
		return constraint.PinLeading(constraint.Vertical, name)
	default:
		return constraint.PinTrailing(constraint.Vertical, name)
	}
}

// ThicknessAttribute returns the dimension that the thickness of an edge at
// this position is measured along.
func (pos Position) ThicknessAttribute() constraint.Attribute {
	pos.mustBeValid()
	switch pos {
	case Right, Left:
		return constraint.Width
	default:
		return constraint.Height
	}
}

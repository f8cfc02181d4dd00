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

// Package constraint contains the small constraint layer that edge decorations
// are positioned with: equality constraints between item edges, a parser for
// the visual format notation and a resolver for pin and size constraints.
package constraint

import "fmt"

// Attribute is an edge or a dimension of a laid out item.
type Attribute int

const (
	NotAnAttribute Attribute = iota
	Left
	Right
	Top
	Bottom
	Width
	Height
)

var attributeNames = [...]string{
	NotAnAttribute: "none",
	Left:           "left",
	Right:          "right",
	Top:            "top",
	Bottom:         "bottom",
	Width:          "width",
	Height:         "height",
}

func (attr Attribute) String() string {
	if attr < 0 || int(attr) >= len(attributeNames) {
		return fmt.Sprintf("Attribute(%d)", int(attr))
	}
	return attributeNames[attr]
}

// Axis returns the axis the attribute is measured along.
// NotAnAttribute is treated as horizontal.
func (attr Attribute) Axis() Axis {
	switch attr {
	case Top, Bottom, Height:
		return Vertical
	default:
		return Horizontal
	}
}

// Axis is the horizontal or vertical direction of a visual format string.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (axis Axis) String() string {
	if axis == Vertical {
		return "V"
	}
	return "H"
}

// Leading returns the attribute of the edge where the axis starts (left or top).
func (axis Axis) Leading() Attribute {
	if axis == Vertical {
		return Top
	}
	return Left
}

// Trailing returns the attribute of the edge where the axis ends (right or bottom).
func (axis Axis) Trailing() Attribute {
	if axis == Vertical {
		return Bottom
	}
	return Right
}

// Size returns the dimension measured along the axis.
func (axis Axis) Size() Attribute {
	if axis == Vertical {
		return Height
	}
	return Width
}

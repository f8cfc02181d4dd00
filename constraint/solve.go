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

package constraint

import "math"

// Rect is a resolved frame in whole cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

type axisPins struct {
	leading, trailing, size float64
	hasLeading, hasTrailing bool
	hasSize                 bool
}

// cells rounds a size to whole cells. Sizes are rounded on their own, so
// that a strip is equally thick against either edge. NaN and negative sizes
// are empty.
func cells(size float64) float64 {
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return math.Round(size)
}

func clamp(val, low, high float64) float64 {
	if math.IsNaN(val) {
		return low
	}
	return math.Max(low, math.Min(val, high))
}

func (pins axisPins) resolve(origin, extent int) (int, int) {
	low, high := float64(origin), float64(origin+extent)
	start, end := low, high
	switch {
	case pins.hasLeading && pins.hasTrailing:
		start = math.Round(low + pins.leading)
		end = math.Round(high - pins.trailing)
	case pins.hasLeading && pins.hasSize:
		start = math.Round(low + pins.leading)
		end = start + cells(pins.size)
	case pins.hasTrailing && pins.hasSize:
		end = math.Round(high - pins.trailing)
		start = end - cells(pins.size)
	case pins.hasLeading:
		start = math.Round(low + pins.leading)
	case pins.hasTrailing:
		end = math.Round(high - pins.trailing)
	case pins.hasSize:
		end = start + cells(pins.size)
	}
	start = clamp(start, low, high)
	end = clamp(end, start, high)
	return int(start), int(end - start)
}

// Solve resolves the frame of every item inside bounds.
//
// Only pins to the parent and absolute size constraints are understood, other
// constraints are ignored. On each axis an item is placed by the constraints
// it has on that axis:
//
//   - both edges pinned: spans the bounds minus both insets
//   - one edge pinned and a size: sits against the pinned edge
//   - one edge pinned: spans from the pinned edge to the opposite bound
//   - only a size: sits at the leading bound
//   - nothing: spans the bounds
//
// If an item has several constraints for the same edge, the last one wins.
// Sizes are rounded to whole cells independently of the pins, negative sizes
// resolve to zero and frames are clipped to the bounds.
func Solve(bounds Rect, parent Item, items []Item, constraints []*Constraint) map[Item]Rect {
	placements := make(map[Item]*[2]axisPins, len(items))
	for _, item := range items {
		placements[item] = &[2]axisPins{}
	}
	for _, c := range constraints {
		pins, ok := placements[c.First]
		if !ok {
			continue
		}
		axis := &pins[c.FirstAttribute.Axis()]
		if c.IsSize() {
			switch c.FirstAttribute {
			case Width, Height:
				axis.size, axis.hasSize = c.Constant, true
			}
			continue
		} else if c.Second != parent || c.FirstAttribute != c.SecondAttribute || c.Multiplier != 1 {
			continue
		}
		switch c.FirstAttribute {
		case Left, Top:
			axis.leading, axis.hasLeading = c.Inset(), true
		case Right, Bottom:
			axis.trailing, axis.hasTrailing = c.Inset(), true
		}
	}
	frames := make(map[Item]Rect, len(items))
	for item, pins := range placements {
		var frame Rect
		frame.X, frame.Width = pins[Horizontal].resolve(bounds.X, bounds.Width)
		frame.Y, frame.Height = pins[Vertical].resolve(bounds.Y, bounds.Height)
		frames[item] = frame
	}
	return frames
}

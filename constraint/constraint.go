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

import (
	"fmt"
	"strconv"
)

// Item is anything that can be laid out with constraints. Items are compared
// by identity, so they should be pointers.
type Item interface{}

// Named can be implemented by items to give them a readable name in
// constraint descriptions.
type Named interface {
	ConstraintName() string
}

// Constraint is the linear equality
//
//	First.FirstAttribute == Second.SecondAttribute * Multiplier + Constant
//
// If Second is nil, the constraint fixes FirstAttribute to Constant.
//
// Constraints are shared by pointer: changing Constant of a registered
// constraint changes the next layout without re-registering it.
type Constraint struct {
	First           Item
	FirstAttribute  Attribute
	Second          Item
	SecondAttribute Attribute
	Multiplier      float64
	Constant        float64
}

// NewSize creates a constraint that fixes the given dimension of the item to an absolute value.
func NewSize(item Item, attr Attribute, constant float64) *Constraint {
	return &Constraint{
		First:           item,
		FirstAttribute:  attr,
		SecondAttribute: NotAnAttribute,
		Multiplier:      0,
		Constant:        constant,
	}
}

// NewPin creates a constraint that pins an edge of item to the same edge of
// another item, offset by constant.
func NewPin(item Item, attr Attribute, to Item, constant float64) *Constraint {
	return &Constraint{
		First:           item,
		FirstAttribute:  attr,
		Second:          to,
		SecondAttribute: attr,
		Multiplier:      1,
		Constant:        constant,
	}
}

// IsSize returns true if the constraint doesn't relate the item to anything else.
func (c *Constraint) IsSize() bool {
	return c.Second == nil
}

// References returns true if the given item is on either side of the constraint.
func (c *Constraint) References(item Item) bool {
	return c.First == item || (c.Second != nil && c.Second == item)
}

// Inset returns how far the pinned edge is inside the edge it's pinned to.
// Leading edges move inwards with a positive constant, trailing edges with a
// negative one.
func (c *Constraint) Inset() float64 {
	switch c.FirstAttribute {
	case Right, Bottom:
		return -c.Constant
	default:
		return c.Constant
	}
}

func nameOf(item Item) string {
	if named, ok := item.(Named); ok {
		return named.ConstraintName()
	}
	return fmt.Sprintf("%T", item)
}

func formatNumber(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}

func (c *Constraint) String() string {
	if c.IsSize() {
		return fmt.Sprintf("%s.%s == %s", nameOf(c.First), c.FirstAttribute, formatNumber(c.Constant))
	}
	rhs := fmt.Sprintf("%s.%s", nameOf(c.Second), c.SecondAttribute)
	if c.Multiplier != 1 {
		rhs += " * " + formatNumber(c.Multiplier)
	}
	if c.Constant > 0 {
		rhs += " + " + formatNumber(c.Constant)
	} else if c.Constant < 0 {
		rhs += " - " + formatNumber(-c.Constant)
	}
	return fmt.Sprintf("%s.%s == %s", nameOf(c.First), c.FirstAttribute, rhs)
}

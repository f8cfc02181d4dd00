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
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mau.fi/mauview"
	"go.mau.fi/tcell"

	"go.mau.fi/edgeview/constraint"
)

// ErrUnknownItem is returned by Box.AddConstraints if a constraint refers to
// something that is neither the box nor one of its children.
var ErrUnknownItem = errors.New("constraint refers to an item outside the box")

// Constrained is implemented by children that have constraints on themselves,
// like the thickness constraint of an Edge.
type Constrained interface {
	Constraints() []*constraint.Constraint
}

// Box is a container view whose children are positioned with constraints.
type Box struct {
	children    []mauview.Component
	constraints []*constraint.Constraint

	background tcell.Color
	text       string
	textStyle  tcell.Style

	log zerolog.Logger
}

var _ Host = (*Box)(nil)
var _ mauview.Component = (*Box)(nil)

// NewBox creates an empty box.
func NewBox() *Box {
	return &Box{
		background: tcell.ColorDefault,
		textStyle:  tcell.StyleDefault,
		log:        zerolog.Nop(),
	}
}

func (box *Box) ConstraintName() string {
	return "box"
}

// SetLogger sets the logger used for debug output about constraint changes.
func (box *Box) SetLogger(log zerolog.Logger) *Box {
	box.log = log
	return box
}

// SetBackgroundColor sets the color the box is filled with before drawing children.
func (box *Box) SetBackgroundColor(color tcell.Color) *Box {
	box.background = color
	return box
}

// SetText sets a label that is drawn in the middle of the box.
func (box *Box) SetText(text string) *Box {
	box.text = text
	return box
}

// SetTextStyle sets the style of the label.
func (box *Box) SetTextStyle(style tcell.Style) *Box {
	box.textStyle = style
	return box
}

// AddChild adds a child view to the box. Adding the same child twice panics.
func (box *Box) AddChild(child mauview.Component) {
	if box.indexOf(child) >= 0 {
		panic("child already added to box")
	}
	box.children = append(box.children, child)
}

// RemoveChild removes a child and every constraint that refers to it.
// It returns false if the component wasn't a child of the box.
func (box *Box) RemoveChild(child mauview.Component) bool {
	index := box.indexOf(child)
	if index < 0 {
		return false
	}
	box.children = append(box.children[:index], box.children[index+1:]...)
	kept := box.constraints[:0]
	for _, c := range box.constraints {
		if !c.References(child) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(box.constraints); i++ {
		box.constraints[i] = nil
	}
	removed := len(box.constraints) - len(kept)
	box.constraints = kept
	box.log.Debug().
		Str("child", fmt.Sprintf("%T", child)).
		Int("removed_constraints", removed).
		Msg("Removed child from box")
	return true
}

func (box *Box) indexOf(child mauview.Component) int {
	for index, existing := range box.children {
		if existing == child {
			return index
		}
	}
	return -1
}

func (box *Box) knows(item constraint.Item) bool {
	if item == constraint.Item(box) {
		return true
	}
	child, ok := item.(mauview.Component)
	return ok && box.indexOf(child) >= 0
}

// Children returns a copy of the list of children.
func (box *Box) Children() []mauview.Component {
	return append([]mauview.Component(nil), box.children...)
}

// AddConstraints registers constraints between the box and its children.
// Either all of the constraints are added, or none of them are.
func (box *Box) AddConstraints(constraints ...*constraint.Constraint) error {
	for _, c := range constraints {
		if !box.knows(c.First) || (c.Second != nil && !box.knows(c.Second)) {
			box.log.Debug().Stringer("constraint", c).Msg("Rejected constraint with unknown item")
			return fmt.Errorf("%w: %s", ErrUnknownItem, c)
		}
	}
	box.constraints = append(box.constraints, constraints...)
	for _, c := range constraints {
		box.log.Trace().Stringer("constraint", c).Msg("Added constraint")
	}
	return nil
}

// Constraints returns a copy of the constraints registered on the box. The
// constraints children have on themselves are not included.
func (box *Box) Constraints() []*constraint.Constraint {
	return append([]*constraint.Constraint(nil), box.constraints...)
}

// AddEdge attaches a new edge to the given side of the box. It's a shorthand
// for AttachEdge(box, position, opts...).
func (box *Box) AddEdge(position Position, opts ...EdgeOption) (*Edge, error) {
	return AttachEdge(box, position, opts...)
}

// Edges returns the edges attached to the box in the order they were added.
func (box *Box) Edges() []*Edge {
	var edges []*Edge
	for _, child := range box.children {
		if edge, ok := child.(*Edge); ok {
			edges = append(edges, edge)
		}
	}
	return edges
}

// EdgeStates returns the persisted form of every edge in the box.
func (box *Box) EdgeStates() []EdgeState {
	edges := box.Edges()
	states := make([]EdgeState, len(edges))
	for i, edge := range edges {
		states[i] = edge.State()
	}
	return states
}

// Layout resolves the frames of all children inside a box of the given size.
func (box *Box) Layout(width, height int) map[constraint.Item]constraint.Rect {
	items := make([]constraint.Item, len(box.children))
	all := box.constraints
	for i, child := range box.children {
		items[i] = child
		if constrained, ok := child.(Constrained); ok {
			all = append(all[:len(all):len(all)], constrained.Constraints()...)
		}
	}
	return constraint.Solve(constraint.Rect{Width: width, Height: height}, box, items, all)
}

// Draw fills the box, draws the label and then draws each child into its resolved frame.
func (box *Box) Draw(screen mauview.Screen) {
	width, height := screen.Size()
	style := tcell.StyleDefault.Background(box.background)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	if len(box.text) > 0 && height > 0 {
		WriteLine(screen, mauview.AlignCenter, box.text, 0, height/2, width, box.textStyle.Background(box.background))
	}
	frames := box.Layout(width, height)
	for _, child := range box.children {
		frame := frames[child]
		if frame.Empty() {
			continue
		}
		child.Draw(&mauview.ProxyScreen{
			Parent:  screen,
			OffsetX: frame.X,
			OffsetY: frame.Y,
			Width:   frame.Width,
			Height:  frame.Height,
		})
	}
}

func (box *Box) OnKeyEvent(event mauview.KeyEvent) bool {
	return false
}

func (box *Box) OnPasteEvent(event mauview.PasteEvent) bool {
	return false
}

func (box *Box) OnMouseEvent(event mauview.MouseEvent) bool {
	return false
}

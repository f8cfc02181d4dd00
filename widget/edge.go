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

	"go.mau.fi/mauview"
	"go.mau.fi/tcell"

	"go.mau.fi/edgeview/constraint"
)

const (
	// DefaultThickness is the thickness of new edges.
	DefaultThickness = 1.0
	// DefaultColor is the color of new edges.
	DefaultColor = tcell.ColorBlack
)

// ErrEdgeNotReady is the panic value when an edge that wasn't created with
// AttachEdge or RestoreEdge is modified.
var ErrEdgeNotReady = errors.New("edge has no thickness constraint")

// Edge is a thin colored strip on one side of a host view.
//
// The strip is positioned entirely by constraints: the host pins it to its
// side, and the edge constrains its own width or height to its thickness.
type Edge struct {
	position  Position
	color     tcell.Color
	fill      tcell.Style
	thickness float64

	leadingSpace  float64
	trailingSpace float64

	thicknessConstraint *constraint.Constraint
	autoresizing        bool
}

var _ mauview.Component = (*Edge)(nil)

func newEdge(position Position) *Edge {
	position.mustBeValid()
	edge := &Edge{
		position:     position,
		color:        DefaultColor,
		fill:         tcell.StyleDefault.Background(DefaultColor).Foreground(DefaultColor),
		thickness:    DefaultThickness,
		autoresizing: true,
	}
	edge.thicknessConstraint = constraint.NewSize(edge, position.ThicknessAttribute(), edge.thickness)
	return edge
}

// Ready returns true if the thickness constraint of the edge has been installed.
func (edge *Edge) Ready() bool {
	return edge.thicknessConstraint != nil
}

func (edge *Edge) ConstraintName() string {
	return edge.position.String() + "Edge"
}

// Position returns the side of the host the edge is attached to.
func (edge *Edge) Position() Position {
	return edge.position
}

// Color returns the current color of the edge.
func (edge *Edge) Color() tcell.Color {
	return edge.color
}

// SetColor changes the color of the edge. The fill style is updated
// immediately, so the next draw uses the new color.
func (edge *Edge) SetColor(color tcell.Color) {
	edge.color = color
	edge.fill = tcell.StyleDefault.Background(color).Foreground(color)
}

// Fill returns the style the edge is drawn with.
func (edge *Edge) Fill() tcell.Style {
	return edge.fill
}

// Thickness returns the current thickness of the edge.
func (edge *Edge) Thickness() float64 {
	return edge.thickness
}

// SetThickness changes the thickness of the edge by updating the constant of
// its thickness constraint. Zero and negative values are accepted, they
// resolve to an empty strip.
//
// SetThickness panics with ErrEdgeNotReady if the edge has no thickness constraint.
func (edge *Edge) SetThickness(thickness float64) {
	if !edge.Ready() {
		panic(ErrEdgeNotReady)
	}
	edge.thickness = thickness
	edge.thicknessConstraint.Constant = thickness
}

// ThicknessConstraint returns the size constraint that controls the thickness of the edge.
func (edge *Edge) ThicknessConstraint() *constraint.Constraint {
	return edge.thicknessConstraint
}

// Constraints returns the constraints the edge has on itself.
func (edge *Edge) Constraints() []*constraint.Constraint {
	if !edge.Ready() {
		return nil
	}
	return []*constraint.Constraint{edge.thicknessConstraint}
}

// Autoresizing returns whether the host may size the edge freely. It's
// disabled when the edge is attached, so that only constraints govern it.
func (edge *Edge) Autoresizing() bool {
	return edge.autoresizing
}

func (edge *Edge) SetAutoresizing(autoresizing bool) {
	edge.autoresizing = autoresizing
}

// Draw fills the screen with the edge color. Strips that are one cell thick
// also get a line character, so they stay visible on terminals without colors.
func (edge *Edge) Draw(screen mauview.Screen) {
	width, height := screen.Size()
	char := ' '
	switch {
	case width == 1 && (edge.position == Left || edge.position == Right):
		char = mauview.Borders.Vertical
	case height == 1 && (edge.position == Top || edge.position == Bottom):
		char = mauview.Borders.Horizontal
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, char, nil, edge.fill)
		}
	}
}

func (edge *Edge) OnKeyEvent(event mauview.KeyEvent) bool {
	return false
}

func (edge *Edge) OnPasteEvent(event mauview.PasteEvent) bool {
	return false
}

func (edge *Edge) OnMouseEvent(event mauview.MouseEvent) bool {
	return false
}

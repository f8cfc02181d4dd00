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

package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/mauview"
	"go.mau.fi/tcell"

	"go.mau.fi/edgeview/constraint"
	"go.mau.fi/edgeview/widget"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestBox_DrawsEdges(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	box := widget.NewBox()
	_, err := box.AddEdge(widget.Top, widget.WithColor(tcell.ColorRed), widget.WithSpacing(2, 2))
	require.NoError(t, err)
	_, err = box.AddEdge(widget.Left, widget.WithColor(tcell.ColorBlue), widget.WithThickness(2))
	require.NoError(t, err)

	box.Draw(screen)

	// Top edge covers x=2..7 of the first row, except where the left edge is drawn over it.
	assert.Equal(t, tcell.ColorRed, background(screen, 2, 0))
	assert.Equal(t, tcell.ColorRed, background(screen, 7, 0))
	assert.Equal(t, tcell.ColorDefault, background(screen, 8, 0))
	assert.Equal(t, tcell.ColorDefault, background(screen, 5, 1))
	mainc, _, _, _ := screen.GetContent(5, 0)
	assert.Equal(t, mauview.Borders.Horizontal, mainc)

	// Left edge is two columns wide and spans the full height.
	for y := 0; y < 5; y++ {
		assert.Equal(t, tcell.ColorBlue, background(screen, 0, y))
		assert.Equal(t, tcell.ColorBlue, background(screen, 1, y))
	}
	mainc, _, _, _ = screen.GetContent(0, 2)
	assert.Equal(t, ' ', mainc)
}

func TestBox_DrawRespondsToPropertyChanges(t *testing.T) {
	screen := newTestScreen(t, 6, 4)
	box := widget.NewBox()
	edge, err := box.AddEdge(widget.Bottom)
	require.NoError(t, err)

	box.Draw(screen)
	assert.Equal(t, tcell.ColorBlack, background(screen, 0, 3))
	assert.Equal(t, tcell.ColorDefault, background(screen, 0, 2))

	edge.SetColor(tcell.ColorYellow)
	edge.SetThickness(2)
	box.Draw(screen)
	assert.Equal(t, tcell.ColorYellow, background(screen, 0, 3))
	assert.Equal(t, tcell.ColorYellow, background(screen, 5, 2))
	assert.Equal(t, tcell.ColorDefault, background(screen, 0, 1))

	edge.SetThickness(0)
	box.Draw(screen)
	assert.Equal(t, tcell.ColorDefault, background(screen, 0, 3))
}

func TestBox_DrawsText(t *testing.T) {
	screen := newTestScreen(t, 11, 3)
	box := widget.NewBox().SetText("hello").SetBackgroundColor(tcell.ColorGreen)
	box.Draw(screen)

	var text []rune
	for x := 3; x < 8; x++ {
		mainc, _, _, _ := screen.GetContent(x, 1)
		text = append(text, mainc)
	}
	assert.Equal(t, "hello", string(text))
	assert.Equal(t, tcell.ColorGreen, background(screen, 0, 0))
}

func TestBox_AddConstraintsRejectsUnknownItems(t *testing.T) {
	box := widget.NewBox()
	edge, err := box.AddEdge(widget.Top)
	require.NoError(t, err)
	before := box.Constraints()

	stranger := widget.NewBox()
	err = box.AddConstraints(
		constraint.NewPin(edge, constraint.Left, box, 1),
		constraint.NewPin(stranger, constraint.Left, box, 0),
	)
	assert.ErrorIs(t, err, widget.ErrUnknownItem)
	assert.Equal(t, before, box.Constraints())
}

func TestBox_AddChildTwicePanics(t *testing.T) {
	box := widget.NewBox()
	child := widget.NewBox()
	box.AddChild(child)
	assert.Panics(t, func() {
		box.AddChild(child)
	})
}

func TestBox_RemoveChild(t *testing.T) {
	box := widget.NewBox()
	top, err := box.AddEdge(widget.Top)
	require.NoError(t, err)
	left, err := box.AddEdge(widget.Left)
	require.NoError(t, err)

	assert.True(t, box.RemoveChild(top))
	assert.False(t, box.RemoveChild(top))
	assert.Equal(t, []*widget.Edge{left}, box.Edges())
	require.Len(t, box.Constraints(), 3)
	for _, c := range box.Constraints() {
		assert.False(t, c.References(top))
	}
}

func TestBox_UnconstrainedChildFillsBox(t *testing.T) {
	box := widget.NewBox()
	child := widget.NewBox()
	box.AddChild(child)
	assert.Equal(t, constraint.Rect{Width: 7, Height: 3}, box.Layout(7, 3)[child])
}

func TestBox_EdgeStates(t *testing.T) {
	box := widget.NewBox()
	_, err := box.AddEdge(widget.Top, widget.WithThickness(2))
	require.NoError(t, err)
	box.AddChild(widget.NewBox())
	_, err = box.AddEdge(widget.Right, widget.WithColor(tcell.ColorRed))
	require.NoError(t, err)

	assert.Equal(t, []widget.EdgeState{
		{Position: widget.Top, Thickness: 2, Color: widget.Color(tcell.ColorBlack)},
		{Position: widget.Right, Thickness: 1, Color: widget.Color(tcell.ColorRed)},
	}, box.EdgeStates())
}

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

package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/tcell"

	"go.mau.fi/edgeview/config"
	"go.mau.fi/edgeview/store"
	"go.mau.fi/edgeview/widget"
)

func newTestView(t *testing.T) (*DemoView, *store.Store) {
	dir := t.TempDir()
	cfg := config.NewConfig(dir)
	cfg.Defaults.Color = widget.Color(tcell.ColorRed)
	st, err := store.Open(filepath.Join(dir, "edges.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	log := zerolog.Nop()
	return NewDemoView(log.WithContext(context.Background()), cfg, st), st
}

func press(view *DemoView, r rune) bool {
	return view.OnKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestParsePositions(t *testing.T) {
	positions, err := ParsePositions("top, Left,,bottom")
	require.NoError(t, err)
	assert.Equal(t, []widget.Position{widget.Top, widget.Left, widget.Bottom}, positions)

	positions, err = ParsePositions("")
	require.NoError(t, err)
	assert.Empty(t, positions)

	_, err = ParsePositions("top,middle")
	assert.Error(t, err)
}

func TestDemoView_LoadPrefersPositions(t *testing.T) {
	view, st := newTestView(t)
	require.NoError(t, st.Save(view.cfg.Host.Name, []widget.EdgeState{{Position: widget.Left, Thickness: 1}}))
	require.NoError(t, view.Load([]widget.Position{widget.Top, widget.Right}))
	edges := view.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, widget.Top, edges[0].Position())
	assert.Equal(t, tcell.ColorRed, edges[0].Color())
	assert.Equal(t, widget.Right, edges[1].Position())
	assert.Equal(t, edges[1], view.selectedEdge())
}

func TestDemoView_LoadRestoresStore(t *testing.T) {
	view, st := newTestView(t)
	view.cfg.Edges = []widget.EdgeState{{Position: widget.Bottom, Thickness: 1}}
	stored := []widget.EdgeState{{Position: widget.Left, Thickness: 2, Color: widget.Color(tcell.ColorBlue)}}
	require.NoError(t, st.Save(view.cfg.Host.Name, stored))
	require.NoError(t, view.Load(nil))
	assert.Equal(t, stored, view.EdgeStates())
}

func TestDemoView_LoadFallsBackToConfig(t *testing.T) {
	view, _ := newTestView(t)
	view.cfg.Edges = []widget.EdgeState{{Position: widget.Bottom, Thickness: 1, Color: widget.Color(tcell.ColorGreen)}}
	require.NoError(t, view.Load(nil))
	assert.Equal(t, view.cfg.Edges, view.EdgeStates())
}

func TestDemoView_Keys(t *testing.T) {
	view, st := newTestView(t)
	redraws := 0
	view.redraw = func() { redraws++ }
	require.NoError(t, view.Load(nil))
	assert.Contains(t, view.StatusLine(), "no edges")

	assert.True(t, press(view, 'b'))
	assert.True(t, press(view, 'l'))
	require.Len(t, view.Edges(), 2)
	left := view.Edges()[1]
	assert.Equal(t, widget.Left, left.Position())

	assert.True(t, press(view, '+'))
	assert.Equal(t, 2.0, left.Thickness())
	assert.True(t, press(view, '-'))
	assert.True(t, press(view, '-'))
	assert.True(t, press(view, '-'))
	assert.Equal(t, 0.0, left.Thickness())

	assert.True(t, press(view, 'c'))
	assert.Equal(t, widget.RotateHue(tcell.ColorRed, hueStep), left.Color())

	assert.True(t, view.OnKeyEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))
	assert.Equal(t, widget.Bottom, view.selectedEdge().Position())
	assert.Contains(t, view.StatusLine(), "[1/2] bottom 1 red")

	assert.True(t, press(view, 'x'))
	require.Len(t, view.Edges(), 1)
	assert.Equal(t, left, view.selectedEdge())

	assert.True(t, press(view, 'w'))
	assert.Equal(t, "Saved 1 edges", view.StatusLine())
	saved, err := st.Load(view.cfg.Host.Name)
	require.NoError(t, err)
	assert.Equal(t, view.EdgeStates(), saved)

	assert.False(t, press(view, 'z'))
	assert.Equal(t, 10, redraws)
}

func TestDemoView_Quit(t *testing.T) {
	view, _ := newTestView(t)
	quits := 0
	view.quit = func() { quits++ }
	assert.True(t, press(view, 'q'))
	assert.True(t, view.OnKeyEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.Equal(t, 2, quits)
}

func TestDemoView_Draw(t *testing.T) {
	view, _ := newTestView(t)
	require.NoError(t, view.Load([]widget.Position{widget.Top}))
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 6)

	view.Draw(screen)
	_, _, style, _ := screen.GetContent(5, 0)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, bg)
	_, _, style, _ = screen.GetContent(5, 1)
	_, bg, _ = style.Decompose()
	assert.NotEqual(t, tcell.ColorRed, bg)

	mainc, _, _, _ := screen.GetContent(0, 5)
	assert.Equal(t, '[', mainc)
}

func TestDemoView_ApplyConfig(t *testing.T) {
	view, _ := newTestView(t)
	redraws := 0
	view.redraw = func() { redraws++ }
	reloaded := config.NewConfig(t.TempDir())
	reloaded.Host.Name = "other"
	reloaded.Host.Text = "reloaded"
	reloaded.Defaults.Thickness = 3
	view.ApplyConfig(reloaded)

	assert.Equal(t, 1, redraws)
	assert.Equal(t, "main", view.cfg.Host.Name)
	assert.Equal(t, "Reloaded config", view.StatusLine())
	assert.True(t, press(view, 't'))
	assert.Equal(t, 3.0, view.Edges()[0].Thickness())
}

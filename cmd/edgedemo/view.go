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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	sync "github.com/sasha-s/go-deadlock"
	"go.mau.fi/mauview"
	"go.mau.fi/tcell"

	"go.mau.fi/edgeview/config"
	"go.mau.fi/edgeview/store"
	"go.mau.fi/edgeview/widget"
)

const statusTimeout = 3 * time.Second
const hueStep = 60

const helpText = "t/r/b/l add  +/- thickness  c color  x remove  tab next  w save  q quit"

// DemoView is the root component of the demo: a box with edges and a status
// line below it.
type DemoView struct {
	*widget.Box
	lock sync.RWMutex

	cfg   *config.Config
	store *store.Store
	log   *zerolog.Logger

	selected    int
	status      string
	statusTimer *time.Timer

	redraw func()
	quit   func()
}

var _ mauview.Component = (*DemoView)(nil)

func NewDemoView(ctx context.Context, cfg *config.Config, st *store.Store) *DemoView {
	log := zerolog.Ctx(ctx).With().Str("host", cfg.Host.Name).Logger()
	box := widget.NewBox().
		SetLogger(log.With().Str("component", "box").Logger()).
		SetBackgroundColor(tcell.Color(cfg.Host.Background)).
		SetText(cfg.Host.Text)
	return &DemoView{
		Box:      box,
		cfg:      cfg,
		store:    st,
		log:      &log,
		selected: -1,
		redraw:   func() {},
		quit:     func() {},
	}
}

// Load attaches the initial edges. Explicit positions are attached with the
// configured defaults, otherwise the stored edges of the host are restored,
// falling back to the edges listed in the config.
func (view *DemoView) Load(positions []widget.Position) error {
	view.lock.Lock()
	defer view.lock.Unlock()
	if len(positions) > 0 {
		for _, pos := range positions {
			if _, err := view.Box.AddEdge(pos, view.cfg.EdgeOptions()...); err != nil {
				return fmt.Errorf("failed to add %s edge: %w", pos, err)
			}
		}
		view.log.Debug().Int("count", len(positions)).Msg("Added edges from command line")
	} else if edges, err := view.store.Restore(view.cfg.Host.Name, view.Box); err == nil {
		view.log.Debug().Int("count", len(edges)).Msg("Restored edges from store")
	} else if errors.Is(err, store.ErrHostNotFound) {
		for _, state := range view.cfg.Edges {
			if _, err = widget.RestoreEdge(view.Box, state); err != nil {
				return fmt.Errorf("failed to add %s edge from config: %w", state.Position, err)
			}
		}
		view.log.Debug().Int("count", len(view.cfg.Edges)).Msg("Added edges from config")
	} else {
		return err
	}
	view.selected = len(view.Box.Edges()) - 1
	return nil
}

// ApplyConfig takes the host appearance and the edge defaults from a reloaded
// config. The host name and paths can only be changed with a restart.
func (view *DemoView) ApplyConfig(cfg *config.Config) {
	view.lock.Lock()
	view.cfg.Host.Text = cfg.Host.Text
	view.cfg.Host.Background = cfg.Host.Background
	view.cfg.Defaults = cfg.Defaults
	view.Box.SetText(cfg.Host.Text).SetBackgroundColor(tcell.Color(cfg.Host.Background))
	view.setStatus("Reloaded config")
	view.lock.Unlock()
	view.redraw()
}

func (view *DemoView) selectedEdge() *widget.Edge {
	edges := view.Box.Edges()
	if view.selected < 0 || view.selected >= len(edges) {
		return nil
	}
	return edges[view.selected]
}

// setStatus shows a message in the status line until it times out. The
// caller must hold the lock.
func (view *DemoView) setStatus(format string, args ...any) {
	view.status = fmt.Sprintf(format, args...)
	if view.statusTimer != nil {
		view.statusTimer.Stop()
	}
	status := view.status
	view.statusTimer = time.AfterFunc(statusTimeout, func() {
		view.lock.Lock()
		cleared := view.status == status
		if cleared {
			view.status = ""
		}
		view.lock.Unlock()
		if cleared {
			view.redraw()
		}
	})
}

func (view *DemoView) addEdge(pos widget.Position) {
	edge, err := view.Box.AddEdge(pos, view.cfg.EdgeOptions()...)
	if err != nil {
		if edge != nil {
			view.Box.RemoveChild(edge)
		}
		view.log.Err(err).Stringer("position", pos).Msg("Failed to add edge")
		view.setStatus("Failed to add %s edge: %v", pos, err)
		return
	}
	view.selected = len(view.Box.Edges()) - 1
	view.log.Debug().Stringer("position", edge.Position()).Msg("Added edge")
}

func (view *DemoView) removeSelected() {
	edge := view.selectedEdge()
	if edge == nil {
		return
	}
	view.Box.RemoveChild(edge)
	if view.selected >= len(view.Box.Edges()) {
		view.selected--
	}
	view.log.Debug().Stringer("position", edge.Position()).Msg("Removed edge")
}

func (view *DemoView) selectNext() {
	count := len(view.Box.Edges())
	if count > 0 {
		view.selected = (view.selected + 1) % count
	}
}

func (view *DemoView) save() {
	states := view.Box.EdgeStates()
	err := view.store.Save(view.cfg.Host.Name, states)
	if err != nil {
		view.log.Err(err).Msg("Failed to save edges")
		view.setStatus("Failed to save edges: %v", err)
		return
	}
	view.log.Info().Int("count", len(states)).Msg("Saved edges")
	view.setStatus("Saved %d edges", len(states))
}

func (view *DemoView) handleKey(event mauview.KeyEvent) (handled, quit bool) {
	view.lock.Lock()
	defer view.lock.Unlock()
	switch event.Key() {
	case tcell.KeyCtrlC:
		return true, true
	case tcell.KeyTab:
		view.selectNext()
		return true, false
	case tcell.KeyRune:
	default:
		return false, false
	}
	edge := view.selectedEdge()
	switch event.Rune() {
	case 't':
		view.addEdge(widget.Top)
	case 'r':
		view.addEdge(widget.Right)
	case 'b':
		view.addEdge(widget.Bottom)
	case 'l':
		view.addEdge(widget.Left)
	case '+':
		if edge != nil {
			edge.SetThickness(edge.Thickness() + 1)
		}
	case '-':
		if edge != nil {
			edge.SetThickness(max(edge.Thickness()-1, 0))
		}
	case 'c':
		if edge != nil {
			edge.SetColor(widget.RotateHue(edge.Color(), hueStep))
		}
	case 'x':
		view.removeSelected()
	case 'w':
		view.save()
	case 'q':
		return true, true
	default:
		return false, false
	}
	return true, false
}

func (view *DemoView) OnKeyEvent(event mauview.KeyEvent) bool {
	handled, quit := view.handleKey(event)
	if quit {
		view.quit()
	} else if handled {
		view.redraw()
	}
	return handled
}

// StatusLine returns the text shown below the box.
func (view *DemoView) StatusLine() string {
	view.lock.RLock()
	defer view.lock.RUnlock()
	return view.statusLine()
}

func (view *DemoView) statusLine() string {
	if len(view.status) > 0 {
		return view.status
	}
	edge := view.selectedEdge()
	if edge == nil {
		return "no edges  " + helpText
	}
	var buf strings.Builder
	_, _ = fmt.Fprintf(&buf, "[%d/%d] %s %g %s  ", view.selected+1, len(view.Box.Edges()),
		edge.Position(), edge.Thickness(), widget.FormatColor(edge.Color()))
	buf.WriteString(helpText)
	return buf.String()
}

func (view *DemoView) Draw(screen mauview.Screen) {
	view.lock.RLock()
	defer view.lock.RUnlock()
	width, height := screen.Size()
	if height <= 0 {
		return
	}
	view.Box.Draw(&mauview.ProxyScreen{Parent: screen, Width: width, Height: height - 1})
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		screen.SetContent(x, height-1, ' ', nil, style)
	}
	widget.WriteLine(screen, mauview.AlignLeft, view.statusLine(), 0, height-1, width, style)
}

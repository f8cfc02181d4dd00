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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.mau.fi/mauview"
	"go.mau.fi/tcell"
	"go.mau.fi/util/exerrors"
	"go.mau.fi/util/exzerolog"
	flag "maunium.net/go/mauflag"

	"go.mau.fi/edgeview/config"
	"go.mau.fi/edgeview/debug"
	"go.mau.fi/edgeview/store"
	"go.mau.fi/edgeview/widget"
)

var wantHelp, _ = flag.MakeHelpFlag()
var configDir = flag.MakeFull("c", "config", "Directory containing config.yaml.", "").String()
var storePath = flag.MakeFull("s", "store", "Path to the edge store database. Overrides the config.", "").String()
var edgePositions = flag.MakeFull("e", "edges", "Comma-separated edge positions to attach instead of the stored edges.", "").String()
var thickness = flag.MakeFull("t", "thickness", "Thickness of new edges. Overrides the config.", "").String()
var color = flag.MakeFull("k", "color", "Color of new edges as a name or #rrggbb. Overrides the config.", "").String()

func init() {
	mauview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	mauview.Styles.ContrastBackgroundColor = tcell.ColorDarkGreen
	if tcellDB := os.Getenv("TCELLDB"); len(tcellDB) == 0 {
		if info, err := os.Stat("/usr/share/tcell/database"); err == nil && info.IsDir() {
			_ = os.Setenv("TCELLDB", "/usr/share/tcell/database")
		}
	}
}

func ParsePositions(str string) ([]widget.Position, error) {
	var positions []widget.Position
	for _, part := range strings.Split(str, ",") {
		if len(strings.TrimSpace(part)) == 0 {
			continue
		}
		pos, err := widget.ParsePosition(part)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// applyFlags overrides config values with the ones given on the command line.
func applyFlags(cfg *config.Config) error {
	if len(*storePath) > 0 {
		cfg.StorePath = *storePath
	}
	if len(*thickness) > 0 {
		val, err := strconv.ParseFloat(*thickness, 64)
		if err != nil {
			return fmt.Errorf("invalid thickness %q: %w", *thickness, err)
		}
		cfg.Defaults.Thickness = val
	}
	if len(*color) > 0 {
		val, err := widget.ParseColor(*color)
		if err != nil {
			return err
		}
		cfg.Defaults.Color = widget.Color(val)
	}
	return nil
}

func main() {
	flag.SetHelpTitles(
		"edgedemo - Constraint-based edge decorations for terminal views.",
		"edgedemo [-h] [-c config dir] [-s store.db] [-e top,left] [-t thickness] [-k color]",
	)
	err := flag.Parse()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(1)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	}
	positions, err := ParsePositions(*edgePositions)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(*configDir) == 0 {
		*configDir = filepath.Join(exerrors.Must(os.UserConfigDir()), "edgedemo")
	}
	cfg := config.NewConfig(*configDir)
	exerrors.PanicIfNotNil(cfg.Load())
	if err = applyFlags(cfg); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := exerrors.Must(cfg.CompileLogger())
	exzerolog.SetupDefaults(log)
	ctx := log.WithContext(context.Background())

	st := exerrors.Must(store.Open(cfg.StorePath))
	defer st.Close()

	view := NewDemoView(ctx, cfg, st)
	exerrors.PanicIfNotNil(view.Load(positions))

	app := mauview.NewApplication()
	view.redraw = app.Redraw
	view.quit = app.Stop
	app.SetRoot(view)

	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()
	err = config.Watch(watchCtx, cfg.Dir, view.ApplyConfig)
	if err != nil {
		log.Warn().Err(err).Msg("Config changes won't be applied until restart")
	}

	debug.OnRecover = func() {
		if app.Screen() != nil {
			app.Screen().Fini()
		}
	}
	debug.RecoverPrettyPanic = true
	defer debug.Recover()

	log.Info().Str("host", cfg.Host.Name).Int("edges", len(view.Edges())).Msg("Starting edge demo")
	err = app.Start()
	if err != nil {
		log.Err(err).Msg("Application exited with error")
		_, _ = fmt.Fprintln(os.Stderr, err)
	}
	log.Info().Msg("Edge demo stopped")
}

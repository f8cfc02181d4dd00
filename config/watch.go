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

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch calls onChange with a freshly read config every time config.yaml in
// dir is written. Files that fail to parse are logged and skipped. The
// watcher stops when the context is canceled.
func Watch(ctx context.Context, dir string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	err = watcher.Add(dir)
	if err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch config directory: %w", err)
	}
	log := zerolog.Ctx(ctx).With().Str("component", "config watcher").Logger()
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				} else if filepath.Base(event.Name) != FileName || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg := NewConfig(dir)
				_, err := cfg.read()
				if errors.Is(err, os.ErrNotExist) {
					continue
				} else if err != nil {
					log.Warn().Err(err).Msg("Failed to reload config")
					continue
				}
				log.Debug().Str("op", event.Op.String()).Msg("Reloaded config")
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("Config watcher error")
			}
		}
	}()
	return nil
}

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

// Package store persists the edges of named hosts in a bbolt database, so
// that they can be restored with widget.RestoreEdge.
package store

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"

	"go.mau.fi/edgeview/widget"
)

var bucketHostEdges = []byte("host_edges")

var ErrHostNotFound = errors.New("host not found")

// Store is a bbolt database of edge states keyed by host name. Each host's
// edges are stored as a single YAML document.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the database at the given path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{
		Timeout:      1 * time.Second,
		NoGrowSync:   false,
		FreelistType: bolt.FreelistArrayType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open edge store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHostEdges)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create edge store bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (store *Store) Close() error {
	return store.db.Close()
}

// Save replaces the stored edges of the given host.
func (store *Store) Save(host string, states []widget.EdgeState) error {
	if states == nil {
		states = []widget.EdgeState{}
	}
	data, err := yaml.Marshal(states)
	if err != nil {
		return fmt.Errorf("failed to marshal edges of %s: %w", host, err)
	}
	return store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHostEdges).Put([]byte(host), data)
	})
}

// Load returns the stored edges of the given host, or ErrHostNotFound if
// nothing has been saved for it.
func (store *Store) Load(host string) (states []widget.EdgeState, err error) {
	err = store.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketHostEdges).Get([]byte(host))
		if data == nil {
			return ErrHostNotFound
		} else if err := yaml.Unmarshal(data, &states); err != nil {
			return fmt.Errorf("failed to parse edges of %s: %w", host, err)
		}
		return nil
	})
	return
}

// Delete removes the stored edges of the given host. Deleting a host that
// doesn't exist is not an error.
func (store *Store) Delete(host string) error {
	return store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHostEdges).Delete([]byte(host))
	})
}

// Hosts returns the names of all hosts that have stored edges, sorted by name.
func (store *Store) Hosts() (hosts []string, err error) {
	err = store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHostEdges).ForEach(func(key, _ []byte) error {
			hosts = append(hosts, string(key))
			return nil
		})
	})
	return
}

// Restore attaches the stored edges of the given host to a view.
func (store *Store) Restore(name string, host widget.Host) ([]*widget.Edge, error) {
	states, err := store.Load(name)
	if err != nil {
		return nil, err
	}
	edges := make([]*widget.Edge, 0, len(states))
	for _, state := range states {
		edge, err := widget.RestoreEdge(host, state)
		if err != nil {
			return edges, err
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

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
	"fmt"

	"go.mau.fi/mauview"
	"go.mau.fi/tcell"

	"go.mau.fi/edgeview/constraint"
)

// edgeName is the name the edge has in the constraint formats passed to the host.
const edgeName = "edge"

// Host is a view that edges can be attached to.
type Host interface {
	// AddChild adds a subview to the host.
	AddChild(child mauview.Component)
	// AddConstraints registers constraints relative to the host's own bounds.
	AddConstraints(constraints ...*constraint.Constraint) error
}

// EdgeOption changes a parameter of AttachEdge.
type EdgeOption func(params *edgeParams)

type edgeParams struct {
	thickness     float64
	color         tcell.Color
	leadingSpace  float64
	trailingSpace float64
}

func defaultEdgeParams() edgeParams {
	return edgeParams{
		thickness: DefaultThickness,
		color:     DefaultColor,
	}
}

// WithThickness sets the thickness of the edge. The default is DefaultThickness.
func WithThickness(thickness float64) EdgeOption {
	return func(params *edgeParams) {
		params.thickness = thickness
	}
}

// WithColor sets the color of the edge. The default is DefaultColor.
func WithColor(color tcell.Color) EdgeOption {
	return func(params *edgeParams) {
		params.color = color
	}
}

// WithLeadingSpace insets the start of the edge (the left end of horizontal
// edges, the top end of vertical edges).
func WithLeadingSpace(space float64) EdgeOption {
	return func(params *edgeParams) {
		params.leadingSpace = space
	}
}

// WithTrailingSpace insets the end of the edge (the right end of horizontal
// edges, the bottom end of vertical edges).
func WithTrailingSpace(space float64) EdgeOption {
	return func(params *edgeParams) {
		params.trailingSpace = space
	}
}

// WithSpacing sets both the leading and trailing space.
func WithSpacing(leadingSpace, trailingSpace float64) EdgeOption {
	return func(params *edgeParams) {
		params.leadingSpace = leadingSpace
		params.trailingSpace = trailingSpace
	}
}

// AttachEdge adds a new edge to the given side of host.
//
// The edge is pinned to the host with one horizontal and one vertical
// constraint format, and its thickness is controlled by a size constraint
// that the edge has on itself. Errors from parsing the formats or from the
// host are returned as-is. The edge has already been added as a child of the
// host when that happens, so it's returned along with the error and the
// caller can detach it, e.g. with Box.RemoveChild.
func AttachEdge(host Host, position Position, opts ...EdgeOption) (*Edge, error) {
	params := defaultEdgeParams()
	for _, opt := range opts {
		opt(&params)
	}

	edge := newEdge(position)
	edge.SetAutoresizing(false)
	host.AddChild(edge)

	views := map[string]constraint.Item{edgeName: edge}
	formats := []string{
		position.HorizontalFormat(edgeName, params.leadingSpace, params.trailingSpace),
		position.VerticalFormat(edgeName, params.leadingSpace, params.trailingSpace),
	}
	for _, format := range formats {
		constraints, err := constraint.Parse(format, views, host)
		if err != nil {
			return edge, err
		}
		err = host.AddConstraints(constraints...)
		if err != nil {
			return edge, err
		}
	}
	edge.leadingSpace = params.leadingSpace
	edge.trailingSpace = params.trailingSpace

	edge.SetThickness(params.thickness)
	edge.SetColor(params.color)
	return edge, nil
}

// EdgeState is the persisted form of an edge.
type EdgeState struct {
	Position      Position `yaml:"position" json:"position"`
	Thickness     float64  `yaml:"thickness" json:"thickness"`
	Color         Color    `yaml:"color" json:"color"`
	LeadingSpace  float64  `yaml:"leading_space,omitempty" json:"leading_space,omitempty"`
	TrailingSpace float64  `yaml:"trailing_space,omitempty" json:"trailing_space,omitempty"`
}

// State returns the current state of the edge for persisting.
func (edge *Edge) State() EdgeState {
	return EdgeState{
		Position:      edge.position,
		Thickness:     edge.thickness,
		Color:         Color(edge.color),
		LeadingSpace:  edge.leadingSpace,
		TrailingSpace: edge.trailingSpace,
	}
}

// Options returns the attach options that recreate the state.
func (state EdgeState) Options() []EdgeOption {
	return []EdgeOption{
		WithThickness(state.Thickness),
		WithColor(tcell.Color(state.Color)),
		WithSpacing(state.LeadingSpace, state.TrailingSpace),
	}
}

// RestoreEdge attaches an edge to host from a persisted state. The thickness
// constraint is installed the same way as in AttachEdge, so the returned edge
// is immediately usable. Like AttachEdge, a failed attach still returns the
// edge that was added to the host.
func RestoreEdge(host Host, state EdgeState) (*Edge, error) {
	if !state.Position.valid() {
		return nil, fmt.Errorf("invalid edge position %d in persisted state", int(state.Position))
	}
	return AttachEdge(host, state.Position, state.Options()...)
}

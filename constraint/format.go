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
	"strings"
)

// StandardSpacing is the spacing used for a bare dash connection, like in "|-[view]".
const StandardSpacing = 1

// FormatError is returned by Parse when the format string is malformed or
// refers to unknown views.
type FormatError struct {
	Format string
	Pos    int
	Msg    string
}

func (fe *FormatError) Error() string {
	marked := fe.Format[:fe.Pos] + "✗" + fe.Format[fe.Pos:]
	return fmt.Sprintf("constraint format %s:%d: %s", marked, fe.Pos, fe.Msg)
}

type formatError string

type parseState struct {
	orig   string
	expr   string
	axis   Axis
	views  map[string]Item
	parent Item
	out    []*Constraint
}

// Parse converts a visual format string into constraints.
//
// The supported subset of the notation is
//
//	[H:|V:] [| connection] view [connection |]
//
// where view is [name] or [name(size)], and connection is either empty for a
// flush pin, a single dash for StandardSpacing, or -n- / -(n)- for a fixed
// spacing. The pipe refers to parent. Views are looked up by name in views.
//
// Pins to the parent are always expressed with the view as the first item:
// "|-(5)-[v]" becomes v.left == parent.left + 5 and "[v]-(5)-|" becomes
// v.right == parent.right - 5.
func Parse(format string, views map[string]Item, parent Item) (constraints []*Constraint, err error) {
	state := parseState{
		orig:   format,
		expr:   format,
		views:  views,
		parent: parent,
	}
	defer func() {
		if p := recover(); p != nil {
			msg, ok := p.(formatError)
			if !ok {
				panic(p)
			}
			constraints = nil
			err = &FormatError{
				Format: state.orig,
				Pos:    len(state.orig) - len(state.expr),
				Msg:    string(msg),
			}
		}
	}()
	state.parse()
	return state.out, nil
}

func (state *parseState) parse() {
	state.axis = Horizontal
	if strings.HasPrefix(state.expr, "H:") {
		state.expr = state.expr[2:]
	} else if strings.HasPrefix(state.expr, "V:") {
		state.axis = Vertical
		state.expr = state.expr[2:]
	}

	pinnedLeading := false
	var leadingSpace float64
	if peek(state) == '|' {
		expect(state, "|")
		pinnedLeading = true
		leadingSpace = parseConnection(state)
	}
	view := parseView(state)
	if pinnedLeading {
		state.out = append(state.out, NewPin(view, state.axis.Leading(), state.parent, leadingSpace))
	}

	skipWhitespace(state)
	if len(state.expr) == 0 {
		return
	}
	trailingSpace := parseConnection(state)
	switch peek(state) {
	case '|':
		expect(state, "|")
		state.out = append(state.out, NewPin(view, state.axis.Trailing(), state.parent, -trailingSpace))
	case '[':
		errorf("connections between views are not supported")
	default:
		errorf("expected | or [")
	}
	skipWhitespace(state)
	if len(state.expr) != 0 {
		errorf("unexpected %q after parent", state.expr)
	}
}

func parseConnection(state *parseState) float64 {
	if peek(state) != '-' {
		return 0
	}
	expect(state, "-")
	switch peek(state) {
	case '[', '|':
		return StandardSpacing
	}
	val := parsePredicate(state)
	expect(state, "-")
	return val
}

func parsePredicate(state *parseState) float64 {
	if peek(state) != '(' {
		return parseNumber(state, false)
	}
	expect(state, "(")
	if strings.HasPrefix(state.expr, "==") {
		state.expr = state.expr[2:]
	} else if strings.HasPrefix(state.expr, "<=") || strings.HasPrefix(state.expr, ">=") {
		errorf("only equality predicates are supported")
	}
	val := parseNumber(state, true)
	expect(state, ")")
	return val
}

func parseView(state *parseState) Item {
	expect(state, "[")
	name := parseName(state)
	item, ok := state.views[name]
	if !ok {
		errorf("unknown view %q", name)
	}
	if peek(state) == '(' {
		size := parsePredicate(state)
		state.out = append(state.out, NewSize(item, state.axis.Size(), size))
	}
	expect(state, "]")
	return item
}

func parseName(state *parseState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if !(c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || (i > 0 && '0' <= c && c <= '9')) {
			break
		}
	}
	if i == 0 {
		errorf("missing view name")
	}
	name := state.expr[:i]
	state.expr = state.expr[i:]
	return name
}

// parseNumber reads a number. Signs and exponents are only allowed inside
// parentheses, since a bare dash ends the connection.
func parseNumber(state *parseState, signed bool) float64 {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if ('0' <= c && c <= '9') || c == '.' {
			continue
		} else if signed && (c == '-' || c == '+' || c == 'e' || c == 'E') {
			continue
		}
		break
	}
	expr := state.expr[:i]
	val, err := strconv.ParseFloat(expr, 64)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return val
}

func peek(state *parseState) byte {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return state.expr[0]
}

func expect(state *parseState, str string) {
	skipWhitespace(state)
	if !strings.HasPrefix(state.expr, str) {
		errorf("expected %q", str)
	}
	state.expr = state.expr[len(str):]
}

func skipWhitespace(state *parseState) {
	state.expr = strings.TrimLeft(state.expr, " \t\n\r")
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

// Pin returns a format that pins both ends of the named view to the parent
// with the given spacings.
func Pin(axis Axis, name string, leadingSpace, trailingSpace float64) string {
	return fmt.Sprintf("%s:|-(%s)-[%s]-(%s)-|", axis, formatNumber(leadingSpace), name, formatNumber(trailingSpace))
}

// PinLeading returns a format that pins the leading edge of the named view flush to the parent.
func PinLeading(axis Axis, name string) string {
	return fmt.Sprintf("%s:|[%s]", axis, name)
}

// PinTrailing returns a format that pins the trailing edge of the named view flush to the parent.
func PinTrailing(axis Axis, name string) string {
	return fmt.Sprintf("%s:[%s]|", axis, name)
}

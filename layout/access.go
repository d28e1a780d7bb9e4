package layout

import (
	"fmt"
	"strings"

	"github.com/zmkutil/layersheet/keycode"
)

// Dialect constants for layer reachability.
const (
	layerTapWrapper = "U_LT" // hold=momentary layer, tap=key
	layerArgPrefix  = "U_"   // layer names appear as U_<NAME> in macro arguments
)

// UnknownAccess is rendered when no base-layer key reaches a layer. A layer
// without resolvable access is reported explicitly, never silently blank.
const UnknownAccess = "unknown"

// Position locates one of the 40 key positions.
type Position struct {
	Index    int
	Hand     Hand
	Role     Role // RoleNone for finger positions
	Row, Col int  // hand-local finger coordinates, valid when Role is RoleNone
}

// PositionAt resolves a flat token index against the thumb mapping.
func PositionAt(index int, mapping ThumbMapping) Position {
	if mapping == nil {
		mapping = DefaultThumbMapping
	}
	if index >= fingerKeys {
		if slot, ok := mapping[index]; ok {
			return Position{Index: index, Hand: slot.Hand, Role: slot.Role}
		}
		hand := Left
		if index >= fingerKeys+rowWidth/2 {
			hand = Right
		}
		return Position{Index: index, Hand: hand, Role: RoleNone, Row: HandRows}
	}
	row, col := index/rowWidth, index%rowWidth
	hand := Left
	if col >= HandCols {
		hand = Right
		col -= HandCols
	}
	return Position{Index: index, Hand: hand, Role: RoleNone, Row: row, Col: col}
}

// Describe returns the human-readable position name, e.g. "left inner" for a
// thumb key or "left row2 col0" for a finger key.
func (p Position) Describe() string {
	if p.Role != RoleNone {
		return p.Hand.String() + " " + p.Role.String()
	}
	return fmt.Sprintf("%s row%d col%d", p.Hand, p.Row, p.Col)
}

// Access records one base-layer key that transitions into a layer.
type Access struct {
	Pos Position
	Key string // translated tap label of the base-layer key
}

// Resolver scans a base layer's raw tokens for layer-tap wrappers.
type Resolver struct {
	Codes   *keycode.Map
	Mapping ThumbMapping
}

// Resolve returns, for every displayable layer reached from the base layer,
// the positions and tap keys that enter it. Layers with no match are simply
// missing from the result; AccessText turns that into the explicit
// "unknown" marker. Every match is retained, a layer reachable from several
// positions keeps them all.
func (r Resolver) Resolve(baseKeys []string, displayable []string) map[string][]Access {
	names := make(map[string]bool, len(displayable))
	for _, n := range displayable {
		names[n] = true
	}
	accesses := make(map[string][]Access)
	for idx, raw := range baseKeys {
		tok := keycode.ParseToken(raw)
		if !tok.IsWrapper() || tok.Text != layerTapWrapper {
			continue
		}
		layer, ok := strings.CutPrefix(tok.Hold, layerArgPrefix)
		if !ok || !names[layer] {
			continue
		}
		accesses[layer] = append(accesses[layer], Access{
			Pos: PositionAt(idx, r.Mapping),
			Key: r.Codes.Translate(tok.Tap).String(),
		})
	}
	tracer().Debugf("resolved access for %d of %d layers", len(accesses), len(displayable))
	return accesses
}

// AccessText renders access descriptors as one human-readable line, joining
// multiple entry points with " / ". With no descriptors it returns the
// literal UnknownAccess.
func AccessText(accesses []Access) string {
	if len(accesses) == 0 {
		return UnknownAccess
	}
	parts := make([]string, len(accesses))
	for i, a := range accesses {
		parts[i] = "hold " + a.Key + " (" + a.Pos.Describe() + ")"
	}
	return strings.Join(parts, " / ")
}

// ActivationOf derives the layer-wide activation pattern from access
// descriptors: the first thumb-row descriptor decides; finger-only access
// leaves all thumbs unhighlighted.
func ActivationOf(accesses []Access) Activation {
	for _, a := range accesses {
		switch a.Pos.Role {
		case RoleOuter:
			return ActivationOuter
		case RoleInner:
			return ActivationInner
		case RoleCombined:
			return ActivationCombined
		}
	}
	return ActivationNone
}

// ThumbAccessSlots extracts the thumb slots among the access descriptors,
// preserving order.
func ThumbAccessSlots(accesses []Access) []ThumbSlot {
	var slots []ThumbSlot
	for _, a := range accesses {
		if a.Pos.Role != RoleNone {
			slots = append(slots, ThumbSlot{Hand: a.Pos.Hand, Role: a.Pos.Role})
		}
	}
	return slots
}

/*
Package layout reconstructs the two-hand key arrangement from a flat token
sequence and derives how layers reach each other.

The supported physical arrangement has 40 positions: three rows of ten
finger keys (positions 0–29, left hand in columns 0–4 of each row, right
hand in columns 5–9) followed by a thumb row (positions 30–39). The thumb
row carries six functional roles flanked by two unused positions per hand.
The default role assignment is

	30, 31  absent padding (left)
	32      left combined
	33      left outer
	34      left inner
	35      right inner
	36      right outer
	37      right combined
	38, 39  absent padding (right)

An earlier config generation swapped which physical slot is outer versus
inner; that variant is available as LegacyThumbMapping and is a configuration
choice, never merged behavior.

The combined role is virtual: it is triggered by pressing outer and inner
together and occupies its own token slot in the definition.
*/
package layout

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/zmkutil/layersheet/keycode"
)

// tracer writes to trace with key 'layersheet.layout'
func tracer() tracing.Trace {
	return tracing.Select("layersheet.layout")
}

// Geometry of the supported arrangement.
const (
	LayerSize  = 40 // total positions per layer
	fingerKeys = 30 // positions 0..29 are finger keys
	rowWidth   = 10 // finger keys per physical row
	HandCols   = 5  // finger columns per hand
	HandRows   = 3  // finger rows
)

// Hand identifies one half of the keyboard.
type Hand int

const (
	Left Hand = iota
	Right
)

// String returns the hand name.
func (h Hand) String() string {
	if h == Right {
		return "right"
	}
	return "left"
}

// Role is one of the three functional thumb-key identities per hand.
type Role int

const (
	RoleNone Role = iota // not a thumb position
	RoleOuter
	RoleInner
	RoleCombined // virtual: outer+inner pressed together
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleOuter:
		return "outer"
	case RoleInner:
		return "inner"
	case RoleCombined:
		return "combined"
	default:
		return "none"
	}
}

// Activation is the layer-wide thumb activation pattern. One value drives
// both hands' thumb groups.
type Activation int

const (
	ActivationNone Activation = iota
	ActivationOuter
	ActivationInner
	ActivationCombined
	ActivationAllSix // reference/tap layer only
)

// Matches reports whether a thumb role counts as active under this pattern.
func (a Activation) Matches(r Role) bool {
	switch a {
	case ActivationAllSix:
		return true
	case ActivationOuter:
		return r == RoleOuter
	case ActivationInner:
		return r == RoleInner
	case ActivationCombined:
		return r == RoleCombined
	default:
		return false
	}
}

// ThumbSlot names one functional thumb key.
type ThumbSlot struct {
	Hand Hand
	Role Role
}

// ThumbMapping assigns thumb-row positions to functional slots. Positions of
// the thumb row not present in the mapping are absent padding.
type ThumbMapping map[int]ThumbSlot

// DefaultThumbMapping is the role assignment of current config generations.
var DefaultThumbMapping = ThumbMapping{
	32: {Left, RoleCombined},
	33: {Left, RoleOuter},
	34: {Left, RoleInner},
	35: {Right, RoleInner},
	36: {Right, RoleOuter},
	37: {Right, RoleCombined},
}

// LegacyThumbMapping is the earlier generation's assignment, with outer and
// inner swapped relative to the physical slots.
var LegacyThumbMapping = ThumbMapping{
	32: {Left, RoleCombined},
	33: {Left, RoleInner},
	34: {Left, RoleOuter},
	35: {Right, RoleOuter},
	36: {Right, RoleInner},
	37: {Right, RoleCombined},
}

// HandGrid is the 3×5 finger-key block of one hand.
type HandGrid [HandRows][HandCols]keycode.Label

// ThumbGroup holds the three thumb-role labels of one hand.
type ThumbGroup struct {
	Outer    keycode.Label
	Inner    keycode.Label
	Combined keycode.Label
}

// ByRole returns the label assigned to a role.
func (g ThumbGroup) ByRole(r Role) keycode.Label {
	switch r {
	case RoleOuter:
		return g.Outer
	case RoleInner:
		return g.Inner
	default:
		return g.Combined
	}
}

// LayerRecord is the fully reconstructed, render-ready form of one layer.
// It is never mutated after creation.
type LayerRecord struct {
	Name        string
	Left, Right HandGrid
	LeftThumbs  ThumbGroup
	RightThumbs ThumbGroup
	Activation  Activation
	AccessSlots []ThumbSlot // thumb keys that enter this layer from the base layer
	AccessText  string
}

// WrongKeyCountError is returned when a layer does not resolve to exactly
// the expected number of key tokens.
type WrongKeyCountError struct {
	Layer     string
	Got, Want int
}

// Error implements the error interface.
func (e WrongKeyCountError) Error() string {
	return fmt.Sprintf("layer %s: definition has %d keys, expected %d", e.Layer, e.Got, e.Want)
}

// Build maps a layer's 40 translated labels into the positional structure.
// It is purely structural: activation and access fields are left zeroed for
// the caller to fill in. Absent markers inside the finger area degrade to
// empty slots so that grids never contain absent labels.
func Build(name string, labels []keycode.Label, mapping ThumbMapping) (LayerRecord, error) {
	if len(labels) != LayerSize {
		return LayerRecord{}, WrongKeyCountError{Layer: name, Got: len(labels), Want: LayerSize}
	}
	if mapping == nil {
		mapping = DefaultThumbMapping
	}
	rec := LayerRecord{Name: name}
	for i := 0; i < fingerKeys; i++ {
		row, col := i/rowWidth, i%rowWidth
		label := labels[i]
		if label.IsAbsent() {
			label = keycode.Label{Text: keycode.EmptyLabel, Kind: keycode.KindEmpty}
		}
		if col < HandCols {
			rec.Left[row][col] = label
		} else {
			rec.Right[row][col-HandCols] = label
		}
	}
	for i := fingerKeys; i < LayerSize; i++ {
		slot, ok := mapping[i]
		if !ok {
			continue // absent padding
		}
		group := &rec.LeftThumbs
		if slot.Hand == Right {
			group = &rec.RightThumbs
		}
		switch slot.Role {
		case RoleOuter:
			group.Outer = labels[i]
		case RoleInner:
			group.Inner = labels[i]
		case RoleCombined:
			group.Combined = labels[i]
		}
	}
	tracer().Debugf("built layer %s", name)
	return rec, nil
}

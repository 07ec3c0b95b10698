// Package minefield implements map-defined minefields: rectangular regions
// that spawn a delayed mine when a player walks out of the playable area
// (border fields) or digs near a placed field (inner fields).
package minefield

import (
	"fmt"

	"github.com/udisondev/minefield/internal/config"
)

// Kind selects how a field interprets its rectangle.
type Kind uint8

const (
	// KindInner fields trigger inside the rectangle, edges included.
	KindInner Kind = iota
	// KindBorder fields trigger strictly outside the rectangle.
	KindBorder
)

// String returns "Border" or "Inner".
func (k Kind) String() string {
	if k == KindBorder {
		return "Border"
	}
	return "Inner"
}

// Default rectangle covers a whole 512x512 map.
const (
	defaultLeft   = 0
	defaultTop    = 0
	defaultRight  = 512
	defaultBottom = 512
)

// Field is one minefield region. Immutable value type.
type Field struct {
	kind   Kind
	left   float64
	top    float64
	right  float64
	bottom float64
	height float64
}

// NewField builds a field without validation. Use Parse for map records.
func NewField(kind Kind, left, top, right, bottom, height float64) Field {
	return Field{kind: kind, left: left, top: top, right: right, bottom: bottom, height: height}
}

// Kind returns the field kind.
func (f Field) Kind() Kind { return f.kind }

// Bounds returns left, top, right, bottom.
func (f Field) Bounds() (left, top, right, bottom float64) {
	return f.left, f.top, f.right, f.bottom
}

// Height returns the vertical threshold; points at or below it never hit.
func (f Field) Height() float64 { return f.height }

// Valid reports whether the rectangle is non-degenerate.
func (f Field) Valid() bool {
	return f.left < f.right && f.top < f.bottom
}

// Contains reports whether a probe at (x, y, z) trips this field.
func (f Field) Contains(x, y, z float64) bool {
	if z <= f.height {
		return false
	}
	if f.kind == KindBorder {
		return x < f.left || x > f.right || y < f.top || y > f.bottom
	}
	return x >= f.left && x <= f.right && y >= f.top && y <= f.bottom
}

func (f Field) String() string {
	return fmt.Sprintf("%s field(%g, %g, %g, %g)", f.kind, f.left, f.top, f.right, f.bottom)
}

// Parse converts a raw map record into a Field.
// Returns false for records that cannot form a valid rectangle; such records
// are dropped by the caller without surfacing an error.
func Parse(rec config.FieldRecord) (Field, bool) {
	f := Field{
		left:   valueOr(rec.Left, defaultLeft),
		top:    valueOr(rec.Top, defaultTop),
		right:  valueOr(rec.Right, defaultRight),
		bottom: valueOr(rec.Bottom, defaultBottom),
		height: valueOr(rec.Height, 0),
	}
	if rec.Border {
		f.kind = KindBorder
	}

	// an empty area counts as absent
	if len(rec.Area) > 0 {
		if len(rec.Area) != 4 {
			return Field{}, false
		}
		f.left, f.top, f.right, f.bottom = rec.Area[0], rec.Area[1], rec.Area[2], rec.Area[3]
	}

	if !f.Valid() {
		return Field{}, false
	}
	return f, true
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

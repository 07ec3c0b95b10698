package model

// Vec3 представляет координаты в воксельном мире.
// X/Y лежат в плоскости карты, Z растёт вниз (0 = верх карты).
// Value type, передаётся по значению.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// NewVec3 creates a Vec3 with the given coordinates.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v shifted by (dx, dy, dz).
func (v Vec3) Add(dx, dy, dz float32) Vec3 {
	return Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
}

// Near reports whether o lies within dist of v on every axis.
// Box test, cheaper than a Euclidean distance and used as a broad phase.
func (v Vec3) Near(o Vec3, dist float32) bool {
	return abs32(v.X-o.X) < dist &&
		abs32(v.Y-o.Y) < dist &&
		abs32(v.Z-o.Z) < dist
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

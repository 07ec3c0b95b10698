package model

// Grenade is a live explosive world object.
// Name tags the feature that spawned it; death handlers read it back to
// attribute the kill.
type Grenade struct {
	ObjectID uint32
	Name     string
	Fuse     float32 // seconds until detonation
	Position Vec3
	Velocity Vec3
	OwnerID  uint8
}

package model

// BlockAction is the action byte of a block action packet.
type BlockAction uint8

const (
	BuildBlock     BlockAction = 0
	DestroyBlock   BlockAction = 1 // spade primary / gun
	SpadeDestroy   BlockAction = 2 // spade secondary, removes a column of 3
	GrenadeDestroy BlockAction = 3
)

// KillType is the cause of death sent in a kill action packet.
type KillType uint8

const (
	KillWeapon      KillType = 0
	KillHeadshot    KillType = 1
	KillMelee       KillType = 2
	KillGrenade     KillType = 3
	KillFall        KillType = 4
	KillTeamChange  KillType = 5
	KillClassChange KillType = 6
)

package tags

// Object types recognised in the level object layer (Tiled "type"/"class").
const (
	TypeWall        = "wall"
	TypePlayerStart = "player_start"
	TypeSprite      = "sprite"
)

// Property names read from Tiled custom properties
const (
	PropTexID   = "texid"
	PropComment = "Comment"
)

// Resolv tags used by the level checker
const (
	ResolvWall        = "wall"
	ResolvSprite      = "sprite"
	ResolvPlayerStart = "player_start"
)

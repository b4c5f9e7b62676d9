// Package leveldata turns a Tiled TMX map into the walls, sprites and player
// start the raycaster reads. It has no rendering or output dependencies.
package leveldata

import (
	"github.com/automoto/tmx2lua/tags"
	opt "github.com/repeale/fp-go/option"
)

// Level holds everything extracted from the selected object layer.
// Coordinates are pixels until Normalize is called, tile units afterwards.
type Level struct {
	Source      string
	TileWidth   float64
	TileHeight  float64
	Width       int // map width in tiles
	Height      int // map height in tiles
	Layer       string
	PlayerStart *PlayerStart // nil when the layer has no player_start object
	Walls       []Wall
	Sprites     []Sprite

	normalized bool
}

// Wall is one segment of a wall polyline.
type Wall struct {
	X1, Y1, X2, Y2 float64
	TexID          int
}

// Sprite is a billboard placed in the level.
type Sprite struct {
	X, Y  float64
	TexID int
}

// PlayerStart is where the player spawns.
type PlayerStart struct {
	X, Y float64
}

// Properties maps a Tiled custom property name to its value. Properties that
// were declared without a value are kept as None.
type Properties map[string]opt.Option[string]

// ObjectKind is the kind of a level object, chosen by its Tiled type.
type ObjectKind int

const (
	KindIgnored ObjectKind = iota
	KindWall
	KindPlayerStart
	KindSprite
)

func (k ObjectKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPlayerStart:
		return "player_start"
	case KindSprite:
		return "sprite"
	}
	return "ignored"
}

// TypeNames are the Tiled object types mapped to each kind.
type TypeNames struct {
	Wall        string
	PlayerStart string
	Sprite      string
}

// DefaultTypeNames matches the types used by the level editor templates.
var DefaultTypeNames = TypeNames{
	Wall:        tags.TypeWall,
	PlayerStart: tags.TypePlayerStart,
	Sprite:      tags.TypeSprite,
}

// Kind classifies a Tiled object type string.
func (n TypeNames) Kind(objectType string) ObjectKind {
	switch objectType {
	case "":
		return KindIgnored
	case n.Wall:
		return KindWall
	case n.PlayerStart:
		return KindPlayerStart
	case n.Sprite:
		return KindSprite
	}
	return KindIgnored
}

// Options control how a map is read.
type Options struct {
	// Layer selects an object group by name. Empty selects the first one.
	Layer string
	Types TypeNames
}

func (o Options) withDefaults() Options {
	if o.Types.Wall == "" {
		o.Types.Wall = DefaultTypeNames.Wall
	}
	if o.Types.PlayerStart == "" {
		o.Types.PlayerStart = DefaultTypeNames.PlayerStart
	}
	if o.Types.Sprite == "" {
		o.Types.Sprite = DefaultTypeNames.Sprite
	}
	return o
}

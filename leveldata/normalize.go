package leveldata

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Axis names the tile dimension a coordinate is divided by.
type Axis int

const (
	AxisTileWidth Axis = iota
	AxisTileHeight
)

func (a Axis) String() string {
	if a == AxisTileHeight {
		return "tileheight"
	}
	return "tilewidth"
}

// ParseAxis accepts "tilewidth" or "tileheight". Empty means tilewidth.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "", "tilewidth":
		return AxisTileWidth, nil
	case "tileheight":
		return AxisTileHeight, nil
	}
	return AxisTileWidth, fmt.Errorf("unknown axis %q (want tilewidth or tileheight)", s)
}

func (l *Level) divisor(a Axis) float64 {
	if a == AxisTileHeight {
		return l.TileHeight
	}
	return l.TileWidth
}

// Normalize converts every coordinate from pixels to tile units in place.
// Sprite y is divided by spriteY; the engine's levels were authored with
// sprites scaled by tile width on both axes. Calling Normalize twice is a no-op.
func (l *Level) Normalize(spriteY Axis) {
	if l.normalized {
		return
	}
	l.normalized = true

	for i := range l.Walls {
		w := &l.Walls[i]
		w.X1 /= l.TileWidth
		w.Y1 /= l.TileHeight
		w.X2 /= l.TileWidth
		w.Y2 /= l.TileHeight
	}

	if spriteY == AxisTileWidth && l.TileWidth != l.TileHeight && len(l.Sprites) > 0 {
		log.Debug().
			Float64("tilewidth", l.TileWidth).
			Float64("tileheight", l.TileHeight).
			Msg("sprite y is divided by tilewidth")
	}
	yDiv := l.divisor(spriteY)
	for i := range l.Sprites {
		s := &l.Sprites[i]
		s.X /= l.TileWidth
		s.Y /= yDiv
	}

	if l.PlayerStart != nil {
		l.PlayerStart.X /= l.TileWidth
		l.PlayerStart.Y /= l.TileHeight
	}
}

// Normalized reports whether coordinates are in tile units.
func (l *Level) Normalized() bool {
	return l.normalized
}

// Package lint looks for level geometry that converts fine but is probably a
// mistake in the editor. It never fails a conversion.
package lint

import (
	"fmt"
	"math"

	"github.com/automoto/tmx2lua/gamemath"
	"github.com/automoto/tmx2lua/leveldata"
	"github.com/automoto/tmx2lua/tags"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
)

// Kind identifies what a finding is about.
type Kind string

const (
	KindZeroLengthWall   Kind = "zero_length_wall"
	KindStartOutsideMap  Kind = "player_start_outside_map"
	KindStartInsideWall  Kind = "player_start_in_wall"
	KindSpriteInsideWall Kind = "sprite_in_wall"
	KindSpriteOutsideMap Kind = "sprite_outside_map"
)

const (
	boxFraction           = 0.5 // checked box size as a fraction of a tile
	minWallBoundsFraction = 0.0625

	maxCells       = 1 << 12 // upper bound on the resolv grid size
	maxSpaceExtent = 1 << 40 // pixels; beyond this wall checks are skipped
)

// Finding is one suspicious spot, in pixel coordinates.
type Finding struct {
	Kind    Kind
	Message string
	X, Y    float64
}

// Check inspects a level that has not been normalized yet.
func Check(level *leveldata.Level) []Finding {
	if level.Normalized() {
		return nil
	}

	var findings []Finding
	space := newWallSpace(level)

	for i, w := range level.Walls {
		if gamemath.SegmentLength(w.X1, w.Y1, w.X2, w.Y2) == 0 {
			findings = append(findings, Finding{
				Kind:    KindZeroLengthWall,
				Message: fmt.Sprintf("wall segment %d has zero length", i),
				X:       w.X1,
				Y:       w.Y1,
			})
		}
	}

	if ps := level.PlayerStart; ps != nil {
		if !space.inMap(ps.X, ps.Y) {
			findings = append(findings, Finding{
				Kind:    KindStartOutsideMap,
				Message: fmt.Sprintf("player start (%g, %g) is outside the map", ps.X, ps.Y),
				X:       ps.X,
				Y:       ps.Y,
			})
		}
		if wall, hit := space.wallAt(ps.X, ps.Y, tags.ResolvPlayerStart); hit {
			findings = append(findings, Finding{
				Kind:    KindStartInsideWall,
				Message: fmt.Sprintf("player start (%g, %g) touches wall segment %d", ps.X, ps.Y, wall),
				X:       ps.X,
				Y:       ps.Y,
			})
		}
	}

	for i, s := range level.Sprites {
		if !space.inMap(s.X, s.Y) {
			findings = append(findings, Finding{
				Kind:    KindSpriteOutsideMap,
				Message: fmt.Sprintf("sprite %d (%g, %g) is outside the map", i, s.X, s.Y),
				X:       s.X,
				Y:       s.Y,
			})
		}
		if wall, hit := space.wallAt(s.X, s.Y, tags.ResolvSprite); hit {
			findings = append(findings, Finding{
				Kind:    KindSpriteInsideWall,
				Message: fmt.Sprintf("sprite %d (%g, %g) touches wall segment %d", i, s.X, s.Y, wall),
				X:       s.X,
				Y:       s.Y,
			})
		}
	}

	return findings
}

// wallSpace indexes wall segments in a resolv space. Cells start at one per
// tile and are doubled until the grid fits maxCells.
type wallSpace struct {
	level  *leveldata.Level
	space  *resolv.Space // nil when the geometry is too far apart to index
	width  float64
	height float64

	// Space coordinates are pixels shifted by the origin so that negative
	// positions still land in a cell.
	originX float64
	originY float64
}

func newWallSpace(level *leveldata.Level) *wallSpace {
	ws := &wallSpace{
		level:  level,
		width:  float64(level.Width) * level.TileWidth,
		height: float64(level.Height) * level.TileHeight,
	}

	minX, minY, maxX, maxY := levelBounds(level)
	minX, minY = minX-level.TileWidth, minY-level.TileHeight
	maxX, maxY = maxX+level.TileWidth, maxY+level.TileHeight
	spaceW, spaceH := maxX-minX, maxY-minY
	if !(spaceW <= maxSpaceExtent && spaceH <= maxSpaceExtent) {
		log.Warn().Float64("width", spaceW).Float64("height", spaceH).Msg("level too large, skipping wall checks")
		return ws
	}

	cellW, cellH := int(level.TileWidth), int(level.TileHeight)
	for cells(spaceW, cellW)*cells(spaceH, cellH) > maxCells {
		cellW *= 2
		cellH *= 2
	}

	ws.originX, ws.originY = minX, minY
	ws.space = resolv.NewSpace(cells(spaceW, cellW)*cellW, cells(spaceH, cellH)*cellH, cellW, cellH)

	minSize := level.TileWidth * minWallBoundsFraction
	for i, w := range level.Walls {
		b := gamemath.SegmentBounds(w.X1, w.Y1, w.X2, w.Y2, minSize)
		obj := resolv.NewObject(b.X-ws.originX, b.Y-ws.originY, b.W, b.H, tags.ResolvWall)
		obj.Data = i
		ws.space.Add(obj)
	}
	return ws
}

// cells is the number of cells of size cell needed to cover extent.
func cells(extent float64, cell int) int {
	return int(math.Ceil(extent / float64(cell)))
}

// levelBounds returns the pixel box holding the map and every object.
func levelBounds(level *leveldata.Level) (minX, minY, maxX, maxY float64) {
	maxX = float64(level.Width) * level.TileWidth
	maxY = float64(level.Height) * level.TileHeight
	grow := func(x, y float64) {
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	for _, w := range level.Walls {
		grow(w.X1, w.Y1)
		grow(w.X2, w.Y2)
	}
	for _, s := range level.Sprites {
		grow(s.X, s.Y)
	}
	if ps := level.PlayerStart; ps != nil {
		grow(ps.X, ps.Y)
	}
	return minX, minY, maxX, maxY
}

// inMap reports whether a point lies inside the map. Maps with no size
// recorded accept everything.
func (ws *wallSpace) inMap(x, y float64) bool {
	if ws.width <= 0 || ws.height <= 0 {
		return true
	}
	return gamemath.Rect{W: ws.width, H: ws.height}.Contains(x, y)
}

// wallAt checks a box centred on (x, y) and returns the index of the first
// wall segment crossing it.
func (ws *wallSpace) wallAt(x, y float64, tag string) (int, bool) {
	if ws.space == nil {
		return 0, false
	}

	w := ws.level.TileWidth * boxFraction
	h := ws.level.TileHeight * boxFraction
	box := gamemath.Rect{X: x - w/2, Y: y - h/2, W: w, H: h}

	marker := resolv.NewObject(box.X-ws.originX, box.Y-ws.originY, box.W, box.H, tag)
	ws.space.Add(marker)
	defer ws.space.Remove(marker)

	check := marker.Check(0, 0, tags.ResolvWall)
	if check == nil {
		return 0, false
	}

	hit := -1
	for _, obj := range check.Objects {
		i, ok := obj.Data.(int)
		if !ok {
			continue
		}
		seg := ws.level.Walls[i]
		if gamemath.SegmentIntersectsRect(seg.X1, seg.Y1, seg.X2, seg.Y2, box) && (hit < 0 || i < hit) {
			hit = i
		}
	}
	return hit, hit >= 0
}

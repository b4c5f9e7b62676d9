package leveldata

import (
	"github.com/automoto/tmx2lua/tags"
	"github.com/lafriks/go-tiled"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/features/math"
)

// objectType returns the Tiled class of an object, falling back to the type
// attribute written by older editors.
func objectType(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func (l *Level) extractObjects(og *tiled.ObjectGroup, types TypeNames) error {
	for _, o := range og.Objects {
		kind := types.Kind(objectType(o))
		switch kind {
		case KindWall:
			walls, err := extractWall(o)
			if err != nil {
				return err
			}
			l.Walls = append(l.Walls, walls...)
		case KindPlayerStart:
			if l.PlayerStart != nil {
				log.Warn().Uint32("object", o.ID).Msg("more than one player start, using the last")
			}
			l.PlayerStart = &PlayerStart{X: o.X, Y: o.Y}
		case KindSprite:
			sprite, err := extractSprite(o)
			if err != nil {
				return err
			}
			l.Sprites = append(l.Sprites, sprite)
		default:
			log.Debug().Uint32("object", o.ID).Str("type", objectType(o)).Msg("ignoring object")
		}
	}
	return nil
}

// extractWall splits a wall polyline into segments in world pixels.
func extractWall(o *tiled.Object) ([]Wall, error) {
	props := parseProperties(o.ID, o.Properties)
	texID, err := props.TexID()
	if err != nil {
		return nil, &MissingFieldError{ObjectID: o.ID, Kind: KindWall, Field: tags.PropTexID, Err: err}
	}

	points := wallPoints(o)
	if len(points) == 0 {
		log.Warn().Uint32("object", o.ID).Msg("wall has no polyline")
		return nil, nil
	}

	walls := make([]Wall, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		walls = append(walls, Wall{
			X1:    points[i-1].X,
			Y1:    points[i-1].Y,
			X2:    points[i].X,
			Y2:    points[i].Y,
			TexID: texID,
		})
	}
	return walls, nil
}

// wallPoints converts the wall's polyline to world coordinates. Polyline
// points are relative to the object origin.
func wallPoints(o *tiled.Object) []math.Vec2 {
	if len(o.PolyLines) == 0 {
		return nil
	}
	if len(o.PolyLines) > 1 {
		log.Warn().Uint32("object", o.ID).Int("polylines", len(o.PolyLines)).Msg("wall has several polylines, using the last")
	}

	polyline := o.PolyLines[len(o.PolyLines)-1]
	if polyline.Points == nil {
		return nil
	}

	points := make([]math.Vec2, len(*polyline.Points))
	for i, point := range *polyline.Points {
		points[i] = math.Vec2{
			X: o.X + point.X,
			Y: o.Y + point.Y,
		}
	}
	return points
}

func extractSprite(o *tiled.Object) (Sprite, error) {
	props := parseProperties(o.ID, o.Properties)
	texID, err := props.TexID()
	if err != nil {
		return Sprite{}, &MissingFieldError{ObjectID: o.ID, Kind: KindSprite, Field: tags.PropTexID, Err: err}
	}
	return Sprite{X: o.X, Y: o.Y, TexID: texID}, nil
}

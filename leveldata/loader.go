package leveldata

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lafriks/go-tiled"
	"github.com/rs/zerolog/log"
)

// Load parses a TMX file from disk and extracts its level objects.
func Load(tmxPath string, opts Options) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath)
	if err != nil {
		return nil, newParseError(tmxPath, err)
	}
	return FromMap(tmxPath, levelMap, opts)
}

// newParseError wraps a TMX decoding error. Map attributes are read as
// integers, so fractional sizes get a hint.
func newParseError(tmxPath string, err error) *ParseError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = fmt.Errorf("%w (map and tile sizes must be whole numbers)", err)
	}
	return &ParseError{Path: tmxPath, Err: err}
}

// FromMap extracts level objects from an already parsed map.
func FromMap(source string, levelMap *tiled.Map, opts Options) (*Level, error) {
	opts = opts.withDefaults()

	if levelMap.TileWidth <= 0 {
		return nil, &ParseError{Path: source, Err: errors.New("map has no tilewidth")}
	}
	if levelMap.TileHeight <= 0 {
		return nil, &ParseError{Path: source, Err: errors.New("map has no tileheight")}
	}

	level := &Level{
		Source:     source,
		TileWidth:  float64(levelMap.TileWidth),
		TileHeight: float64(levelMap.TileHeight),
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		Walls:      []Wall{},
		Sprites:    []Sprite{},
	}

	log.Info().Msg("Finding layers...")
	og, err := selectLayer(levelMap, opts.Layer)
	if err != nil {
		return nil, &ParseError{Path: source, Err: err}
	}
	if og == nil {
		log.Warn().Str("path", source).Msg("map has no object layer")
		return level, nil
	}

	log.Info().Str("layer", og.Name).Int("objects", len(og.Objects)).Msg("Parsing objects...")
	level.Layer = og.Name
	if err := level.extractObjects(og, opts.Types); err != nil {
		return nil, err
	}

	return level, nil
}

// selectLayer picks the object group to extract. Only one layer is read; any
// other object group is logged and skipped.
func selectLayer(levelMap *tiled.Map, name string) (*tiled.ObjectGroup, error) {
	var selected *tiled.ObjectGroup
	for _, og := range levelMap.ObjectGroups {
		if selected == nil && (name == "" || og.Name == name) {
			selected = og
			continue
		}
		log.Warn().Str("layer", og.Name).Msg("ignoring object layer")
	}

	if selected == nil && name != "" {
		return nil, fmt.Errorf("object layer %q not found", name)
	}
	return selected, nil
}

// Validate checks level-wide requirements that only hold once every object
// has been read.
func (l *Level) Validate() error {
	if l.PlayerStart == nil {
		return &MissingFieldError{Kind: KindPlayerStart, Field: "player_start"}
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/automoto/tmx2lua/export"
	"github.com/automoto/tmx2lua/leveldata"
	"github.com/automoto/tmx2lua/preview"
	"github.com/automoto/tmx2lua/tags"
)

// Config holds everything that changes how a map is converted. Zero values
// mean "not set" so configs from several sources can be layered.
type Config struct {
	// Output
	Format string `yaml:"format" hcl:"format,optional" json:"format,omitempty"` // lua, json or cbor

	// Coordinates
	SpriteYAxis string `yaml:"sprite_y_axis" hcl:"sprite_y_axis,optional" json:"sprite_y_axis,omitempty"` // tilewidth or tileheight

	// Object layer
	Layer           string `yaml:"layer" hcl:"layer,optional" json:"layer,omitempty"` // empty selects the first object group
	WallType        string `yaml:"wall_type" hcl:"wall_type,optional" json:"wall_type,omitempty"`
	PlayerStartType string `yaml:"player_start_type" hcl:"player_start_type,optional" json:"player_start_type,omitempty"`
	SpriteType      string `yaml:"sprite_type" hcl:"sprite_type,optional" json:"sprite_type,omitempty"`

	// Checks
	SkipLint *bool `yaml:"skip_lint" hcl:"skip_lint,optional" json:"skip_lint,omitempty"` // nil when not set

	// Preview
	PreviewScale int `yaml:"preview_scale" hcl:"preview_scale,optional" json:"preview_scale,omitempty"` // pixels per tile
}

// C is the built-in configuration every other source is layered on.
var C *Config

func init() {
	C = &Config{
		Format:          string(export.FormatLua),
		SpriteYAxis:     leveldata.AxisTileWidth.String(),
		WallType:        tags.TypeWall,
		PlayerStartType: tags.TypePlayerStart,
		SpriteType:      tags.TypeSprite,
		PreviewScale:    preview.DefaultScale,
	}
}

// Default returns a copy of the built-in configuration.
func Default() Config {
	return *C
}

// Merge returns c with every field set in o applied on top.
func (c Config) Merge(o Config) Config {
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.SpriteYAxis != "" {
		c.SpriteYAxis = o.SpriteYAxis
	}
	if o.Layer != "" {
		c.Layer = o.Layer
	}
	if o.WallType != "" {
		c.WallType = o.WallType
	}
	if o.PlayerStartType != "" {
		c.PlayerStartType = o.PlayerStartType
	}
	if o.SpriteType != "" {
		c.SpriteType = o.SpriteType
	}
	if o.SkipLint != nil {
		c.SkipLint = o.SkipLint
	}
	if o.PreviewScale != 0 {
		c.PreviewScale = o.PreviewScale
	}
	return c
}

// Validate checks the values that have a fixed set of choices.
func (c Config) Validate() error {
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := leveldata.ParseAxis(c.SpriteYAxis); err != nil {
		return fmt.Errorf("sprite_y_axis: %w", err)
	}
	if c.PreviewScale < 0 {
		return fmt.Errorf("preview_scale must not be negative, got %d", c.PreviewScale)
	}
	return nil
}

// LintDisabled reports whether the level checks are turned off.
func (c Config) LintDisabled() bool {
	return c.SkipLint != nil && *c.SkipLint
}

// Bool returns a pointer to v for optional fields.
func Bool(v bool) *bool {
	return &v
}

// OutputFormat is the parsed Format.
func (c Config) OutputFormat() export.Format {
	f, err := export.ParseFormat(c.Format)
	if err != nil {
		return export.FormatLua
	}
	return f
}

// SpriteAxis is the parsed SpriteYAxis.
func (c Config) SpriteAxis() leveldata.Axis {
	a, err := leveldata.ParseAxis(c.SpriteYAxis)
	if err != nil {
		return leveldata.AxisTileWidth
	}
	return a
}

// LevelOptions returns the loader options for this configuration.
func (c Config) LevelOptions() leveldata.Options {
	return leveldata.Options{
		Layer: c.Layer,
		Types: leveldata.TypeNames{
			Wall:        c.WallType,
			PlayerStart: c.PlayerStartType,
			Sprite:      c.SpriteType,
		},
	}
}

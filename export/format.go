// Package export serializes a normalized level for the engine and writes it
// next to the source map.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/automoto/tmx2lua/leveldata"
	"github.com/fxamacker/cbor/v2"
)

// Format is an output encoding.
type Format string

const (
	FormatLua  Format = "lua"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// ParseFormat accepts lua, json or cbor. Empty means lua.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatLua, nil
	case FormatLua, FormatJSON, FormatCBOR:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want lua, json or cbor)", s)
}

// OutputPath is where the converted level for input is written: the input
// path with the format extension appended, e.g. level.tmx.lua.
func OutputPath(input string, f Format) string {
	return input + "." + string(f)
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type wall struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	TexID int     `json:"texid"`
}

type sprite struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	TexID int     `json:"texid"`
}

// document is the shape shared by every format.
type document struct {
	PlayerStart point    `json:"player_start"`
	Walls       []wall   `json:"walls"`
	Sprites     []sprite `json:"sprites"`
}

func newDocument(level *leveldata.Level) document {
	doc := document{
		PlayerStart: point{X: level.PlayerStart.X, Y: level.PlayerStart.Y},
		Walls:       make([]wall, 0, len(level.Walls)),
		Sprites:     make([]sprite, 0, len(level.Sprites)),
	}
	for _, w := range level.Walls {
		doc.Walls = append(doc.Walls, wall{X1: w.X1, Y1: w.Y1, X2: w.X2, Y2: w.Y2, TexID: w.TexID})
	}
	for _, s := range level.Sprites {
		doc.Sprites = append(doc.Sprites, sprite{X: s.X, Y: s.Y, TexID: s.TexID})
	}
	return doc
}

// Encode renders the whole level in memory. A level without a player start
// cannot be encoded.
func Encode(level *leveldata.Level, f Format) ([]byte, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	doc := newDocument(level)
	switch f {
	case FormatLua, "":
		return encodeLua(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatCBOR:
		data, err := cbor.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode cbor: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unknown output format %q", f)
}

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/tmx2lua/leveldata"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func exampleLevel() *leveldata.Level {
	return &leveldata.Level{
		TileWidth:   32,
		TileHeight:  32,
		PlayerStart: &leveldata.PlayerStart{X: 2, Y: 1},
		Walls:       []leveldata.Wall{{X1: 0, Y1: 0, X2: 1, Y2: 0, TexID: 3}},
		Sprites:     []leveldata.Sprite{{X: 0.5, Y: 0.5, TexID: 7}},
	}
}

func TestEncode_Lua(t *testing.T) {
	data, err := Encode(exampleLevel(), FormatLua)
	require.NoError(t, err)
	require.Equal(t, `return {
  player_start = {x = 2, y = 1},
  walls = {
    {x1 = 0, y1 = 0, x2 = 1, y2 = 0, texid = 3},
  },
  sprites = {
    {x = 0.5, y = 0.5, texid = 7},
  },
}
`, string(data))
}

func TestEncode_LuaEmptyLists(t *testing.T) {
	level := exampleLevel()
	level.Walls = nil
	level.Sprites = nil
	level.PlayerStart = &leveldata.PlayerStart{X: 1.25, Y: 0.1}

	data, err := Encode(level, FormatLua)
	require.NoError(t, err)
	require.Equal(t, `return {
  player_start = {x = 1.25, y = 0.1},
  walls = {
  },
  sprites = {
  },
}
`, string(data))
}

func TestEncode_LuaSeveralEntries(t *testing.T) {
	level := exampleLevel()
	level.Walls = append(level.Walls, leveldata.Wall{X1: 1, Y1: 0, X2: 1, Y2: 2.5, TexID: 3})

	data, err := Encode(level, FormatLua)
	require.NoError(t, err)
	require.Contains(t, string(data), `  walls = {
    {x1 = 0, y1 = 0, x2 = 1, y2 = 0, texid = 3},
    {x1 = 1, y1 = 0, x2 = 1, y2 = 2.5, texid = 3},
  },
`)
}

func TestEncode_JSONAndCBOR(t *testing.T) {
	var fromJSON document
	data, err := Encode(exampleLevel(), FormatJSON)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &fromJSON))

	var fromCBOR document
	data, err = Encode(exampleLevel(), FormatCBOR)
	require.NoError(t, err)
	require.NoError(t, cbor.Unmarshal(data, &fromCBOR))

	want := newDocument(exampleLevel())
	require.Equal(t, want, fromJSON)
	require.Equal(t, want, fromCBOR)
}

func TestEncode_NoPlayerStart(t *testing.T) {
	level := exampleLevel()
	level.PlayerStart = nil

	_, err := Encode(level, FormatLua)
	var missing *leveldata.MissingFieldError
	require.ErrorAs(t, err, &missing)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatLua, f)

	f, err = ParseFormat("CBOR")
	require.NoError(t, err)
	require.Equal(t, FormatCBOR, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)

	require.Equal(t, "maps/e1m1.tmx.lua", OutputPath("maps/e1m1.tmx", FormatLua))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.tmx.lua")

	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
	require.NoError(t, WriteFile(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))

	// Only the output remains, no temp files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFile_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "level.tmx.lua")

	err := WriteFile(path, []byte("data"))
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	require.Equal(t, path, writeErr.Path)
	require.NoFileExists(t, path)
}

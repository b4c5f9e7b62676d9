package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/tmx2lua/export"
	"github.com/automoto/tmx2lua/leveldata"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	// yaml config
	{
		path := filepath.Join(dir, "tmx2lua.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
format: json
sprite_y_axis: tileheight
layer: Objects
skip_lint: true
`), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, Config{Format: "json", SpriteYAxis: "tileheight", Layer: "Objects", SkipLint: Bool(true)}, cfg)
	}

	// hcl config
	{
		path := filepath.Join(dir, "tmx2lua.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`
format        = "cbor"
wall_type     = "solid"
preview_scale = 24
`), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, Config{Format: "cbor", WallType: "solid", PreviewScale: 24}, cfg)
	}

	// json config, read as HCL JSON
	{
		path := filepath.Join(dir, "tmx2lua.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"sprite_type": "billboard"}`), 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, Config{SpriteType: "billboard"}, cfg)
	}

	// empty yaml
	{
		path := filepath.Join(dir, "empty.yml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, Config{}, cfg)
	}

	// unknown key
	{
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("formatt: lua\n"), 0644))

		_, err := LoadFile(path)
		require.Error(t, err)
	}

	// unsupported extension
	_, err := LoadFile(filepath.Join(dir, "tmx2lua.toml"))
	require.Error(t, err)

	// missing file
	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := Default()
	saved := Config{Format: "json", SkipLint: Bool(true)}
	file := Config{Format: "cbor", Layer: "Walls"}
	flags := Config{SpriteYAxis: "tileheight"}

	cfg := base.Merge(saved).Merge(file).Merge(flags)

	require.Equal(t, "cbor", cfg.Format)
	require.Equal(t, "Walls", cfg.Layer)
	require.Equal(t, "tileheight", cfg.SpriteYAxis)
	require.True(t, cfg.LintDisabled())

	// A later source can turn the checks back on
	require.False(t, cfg.Merge(Config{SkipLint: Bool(false)}).LintDisabled())
	require.Equal(t, "wall", cfg.WallType)
	require.Equal(t, export.FormatCBOR, cfg.OutputFormat())
	require.Equal(t, leveldata.AxisTileHeight, cfg.SpriteAxis())
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, export.FormatLua, cfg.OutputFormat())
	require.Equal(t, leveldata.AxisTileWidth, cfg.SpriteAxis())
	require.Equal(t, leveldata.DefaultTypeNames, cfg.LevelOptions().Types)

	// Default hands out copies
	cfg.Format = "json"
	require.Equal(t, "lua", C.Format)
}

func TestValidate(t *testing.T) {
	require.Error(t, Default().Merge(Config{Format: "xml"}).Validate())
	require.Error(t, Default().Merge(Config{SpriteYAxis: "depth"}).Validate())
	require.Error(t, Default().Merge(Config{PreviewScale: -1}).Validate())
}

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func TestSettings(t *testing.T) {
	store := &memStore{}

	// Nothing saved yet
	require.Equal(t, Config{}, LoadSettings(store))

	want := Config{Format: "json", SpriteYAxis: "tileheight"}
	require.NoError(t, SaveSettings(store, want))
	require.Equal(t, want, LoadSettings(store))

	// Broken settings are ignored
	store.items[settingsItem] = []byte("{not json")
	require.Equal(t, Config{}, LoadSettings(store))

	store.loadErr = errors.New("disk on fire")
	require.Equal(t, Config{}, LoadSettings(store))

	require.Equal(t, Config{}, LoadSettings(nil))
}

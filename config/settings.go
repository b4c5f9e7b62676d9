package config

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsItem = "settings"

// Store keeps per-user data between runs.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenStore opens the per-user data directory for the tool.
func OpenStore() (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "tmx2lua",
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadSettings returns the saved user settings. Missing or unreadable settings
// yield an empty Config; they never stop a conversion.
func LoadSettings(store Store) Config {
	if store == nil {
		return Config{}
	}

	data, err := store.LoadItem(settingsItem)
	if err != nil {
		log.Warn().Err(err).Msg("could not load saved settings")
		return Config{}
	}
	if data == nil {
		// Nothing saved yet
		return Config{}
	}

	var saved Config
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return Config{}
	}
	return saved
}

// SaveSettings stores cfg as the user's defaults.
func SaveSettings(store Store, cfg Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return store.SaveItem(settingsItem, data)
}

package leveldata

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/automoto/tmx2lua/tags"
	"github.com/lafriks/go-tiled"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

var (
	errNotSet  = errors.New("property not set")
	errNoValue = errors.New("property has no value")
)

// parseProperties collects an object's custom properties. Unnamed properties
// and Comment are dropped; properties without a value are kept as None.
func parseProperties(objectID uint32, props tiled.Properties) Properties {
	bag := make(Properties, len(props))
	for _, p := range props {
		if p == nil {
			continue
		}
		if p.Name == tags.PropComment {
			log.Debug().Uint32("object", objectID).Msg("ignoring Comment property")
			continue
		}
		if p.Name == "" {
			log.Warn().Uint32("object", objectID).Msg("ignoring property without a name")
			continue
		}
		if p.Value == "" {
			log.Warn().Uint32("object", objectID).Str("key", p.Name).Msg("property has no value")
			bag[p.Name] = opt.None[string]()
			continue
		}
		bag[p.Name] = opt.Some(p.Value)
	}
	return bag
}

// String returns the value of a property and whether it was set with a value.
func (p Properties) String(name string) (string, bool) {
	v, ok := p[name]
	if !ok || opt.IsNone(v) {
		return "", false
	}
	return v.Value, true
}

// TexID returns the texture id property as a non-negative integer.
func (p Properties) TexID() (int, error) {
	raw, ok := p.String(tags.PropTexID)
	if !ok {
		if _, declared := p[tags.PropTexID]; declared {
			return 0, errNoValue
		}
		return 0, errNotSet
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	if id < 0 {
		return 0, fmt.Errorf("negative texture id %d", id)
	}
	return id, nil
}

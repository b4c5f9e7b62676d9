package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
)

var (
	mu    sync.Mutex
	ttfs  = map[FontName][]byte{Regular: goregular.TTF}
	faces = map[faceKey]font.Face{}
)

type faceKey struct {
	name FontName
	size float64
}

// Face returns a cached face of the named font at the given point size.
func (f FontName) Face(size float64) (font.Face, error) {
	mu.Lock()
	defer mu.Unlock()

	key := faceKey{name: f, size: size}
	if face, ok := faces[key]; ok {
		return face, nil
	}

	ttf, ok := ttfs[f]
	if !ok {
		return nil, fmt.Errorf("font %s not found", f)
	}
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f, err)
	}

	face := truetype.NewFace(fontData, &truetype.Options{Size: size})
	faces[key] = face
	return face, nil
}

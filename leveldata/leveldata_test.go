package leveldata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// exampleTMX is the reference level: 32px tiles, player start at (64,32),
// one two-point wall and one sprite.
const exampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="Objects">
  <object id="1" type="player_start" x="64" y="32"/>
  <object id="2" type="wall" x="0" y="0">
   <properties>
    <property name="texid" value="3"/>
   </properties>
   <polyline points="0,0 32,0"/>
  </object>
  <object id="3" type="sprite" x="16" y="16">
   <properties>
    <property name="texid" value="7"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func writeTMX(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.tmx")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

package export

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"
)

var luaTemplate = template.Must(template.New("level").Funcs(template.FuncMap{
	"num": formatNumber,
}).Parse(`return {
  player_start = {x = {{ num .PlayerStart.X }}, y = {{ num .PlayerStart.Y }}},
  walls = {
{{- range .Walls }}
    {x1 = {{ num .X1 }}, y1 = {{ num .Y1 }}, x2 = {{ num .X2 }}, y2 = {{ num .Y2 }}, texid = {{ .TexID }}},
{{- end }}
  },
  sprites = {
{{- range .Sprites }}
    {x = {{ num .X }}, y = {{ num .Y }}, texid = {{ .TexID }}},
{{- end }}
  },
}
`))

// formatNumber prints the shortest representation that reads back to v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func encodeLua(doc document) ([]byte, error) {
	var buf bytes.Buffer
	if err := luaTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("encode lua: %w", err)
	}
	return buf.Bytes(), nil
}

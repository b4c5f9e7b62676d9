// Package convert runs the TMX to engine level pipeline: load, check,
// normalize, encode and write.
package convert

import (
	"github.com/automoto/tmx2lua/config"
	"github.com/automoto/tmx2lua/export"
	"github.com/automoto/tmx2lua/leveldata"
	"github.com/automoto/tmx2lua/lint"
	"github.com/rs/zerolog/log"
)

// Result describes a finished conversion.
type Result struct {
	Output   string
	Format   export.Format
	Walls    int
	Sprites  int
	Findings []lint.Finding
}

// LoadLevel reads a TMX map, checks it and converts it to tile units. The
// returned level is ready for encoding.
func LoadLevel(tmxPath string, cfg config.Config) (*leveldata.Level, []lint.Finding, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log.Info().Str("path", tmxPath).Msg("Parsing...")
	level, err := leveldata.Load(tmxPath, cfg.LevelOptions())
	if err != nil {
		return nil, nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, nil, err
	}

	var findings []lint.Finding
	if !cfg.LintDisabled() {
		log.Info().Msg("Checking level...")
		findings = lint.Check(level)
		for _, f := range findings {
			log.Warn().Str("check", string(f.Kind)).Float64("x", f.X).Float64("y", f.Y).Msg(f.Message)
		}
	}

	log.Info().Msg("Fixing object coordinates...")
	level.Normalize(cfg.SpriteAxis())

	return level, findings, nil
}

// Run converts the map at tmxPath and writes the result next to it. Nothing
// is written unless every earlier step succeeded.
func Run(tmxPath string, cfg config.Config) (*Result, error) {
	level, findings, err := LoadLevel(tmxPath, cfg)
	if err != nil {
		return nil, err
	}

	format := cfg.OutputFormat()
	data, err := export.Encode(level, format)
	if err != nil {
		return nil, err
	}

	output := export.OutputPath(tmxPath, format)
	log.Info().Str("path", output).Msg("Writing...")
	if err := export.WriteFile(output, data); err != nil {
		return nil, err
	}

	log.Info().Int("walls", len(level.Walls)).Int("sprites", len(level.Sprites)).Msg("Done!")
	return &Result{
		Output:   output,
		Format:   format,
		Walls:    len(level.Walls),
		Sprites:  len(level.Sprites),
		Findings: findings,
	}, nil
}

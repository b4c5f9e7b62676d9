package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/tmx2lua/config"
	"github.com/automoto/tmx2lua/convert"
	"github.com/automoto/tmx2lua/export"
	"github.com/automoto/tmx2lua/leveldata"
	"github.com/automoto/tmx2lua/preview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Exit codes. Usage errors and unclassified failures share 1.
const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 1
	exitParse        = 2
	exitMissingField = 3
	exitWrite        = 4
)

const usage = `Usage: tmx2lua convert <path-to-file.tmx>
Run "tmx2lua --help" for all commands and flags.`

type cli struct {
	Debug  bool   `help:"Whether to enable debug logging."`
	Config string `help:"Configuration file (.yaml, .hcl or .json)." type:"path" placeholder:"FILE"`

	Format      string `help:"Output format: lua, json or cbor."`
	SpriteYAxis string `help:"Tile dimension sprite y is divided by: tilewidth or tileheight." name:"sprite-y-axis"`
	Layer       string `help:"Object layer to convert. Defaults to the first one."`
	SkipLint    bool   `help:"Do not check the level for suspicious geometry." xor:"lint"`
	Lint        bool   `help:"Check the level even if saved settings or the config file skip it." xor:"lint"`

	Convert struct {
		Path string `arg:"" name:"path" help:"Tiled map to convert."`
	} `cmd:"" help:"Convert a Tiled map to an engine level table."`

	Preview struct {
		Path  string `arg:"" name:"path" help:"Tiled map to render."`
		Out   string `help:"PNG file to write. Defaults to <path>.png." short:"o"`
		Scale int    `help:"Pixels per tile."`
	} `cmd:"" help:"Render a Tiled map to a PNG preview."`

	Settings struct {
		Show  bool `help:"Print the saved settings."`
		Reset bool `help:"Forget all saved settings."`
	} `cmd:"" help:"Save the global flags as defaults for later runs."`
}

// openStore is replaced in tests.
var openStore = config.OpenStore

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func setupLogging(w io.Writer, debug bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug logging enabled")
	}
}

// run is main without the os.Exit, returning the exit code instead.
func run(args []string, stdout, stderr io.Writer) int {
	setupLogging(stderr, false)

	var c cli
	exited, exitCode := false, exitOK
	parser, err := kong.New(&c,
		kong.Name("tmx2lua"),
		kong.Description("Convert Tiled maps into raycaster level tables."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			exited = true
			exitCode = code
		}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	ctx, err := parser.Parse(args)
	if exited {
		// --help already printed
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "tmx2lua: %v\n%s\n", err, usage)
		return exitUsage
	}

	setupLogging(stderr, c.Debug)

	switch ctx.Command() {
	case "convert <path>":
		return c.runConvert()
	case "preview <path>":
		return c.runPreview()
	case "settings":
		return c.runSettings(stdout)
	}

	fmt.Fprintln(stderr, usage)
	return exitUsage
}

// flags returns the configuration given on the command line.
func (c *cli) flags() config.Config {
	cfg := config.Config{
		Format:       c.Format,
		SpriteYAxis:  c.SpriteYAxis,
		Layer:        c.Layer,
		PreviewScale: c.Preview.Scale,
	}
	switch {
	case c.SkipLint:
		cfg.SkipLint = config.Bool(true)
	case c.Lint:
		cfg.SkipLint = config.Bool(false)
	}
	return cfg
}

// fileConfig loads --config, if given.
func (c *cli) fileConfig() (config.Config, error) {
	if c.Config == "" {
		return config.Config{}, nil
	}
	return config.LoadFile(c.Config)
}

func store() config.Store {
	s, err := openStore()
	if err != nil {
		log.Warn().Err(err).Msg("could not open saved settings")
		return nil
	}
	return s
}

// resolveConfig layers defaults, saved settings, the config file and flags.
func (c *cli) resolveConfig() (config.Config, error) {
	fileCfg, err := c.fileConfig()
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Default().
		Merge(config.LoadSettings(store())).
		Merge(fileCfg).
		Merge(c.flags())
	return cfg, cfg.Validate()
}

func (c *cli) runConvert() int {
	cfg, err := c.resolveConfig()
	if err != nil {
		return fail(err)
	}

	if _, err := convert.Run(c.Convert.Path, cfg); err != nil {
		return fail(err)
	}
	return exitOK
}

func (c *cli) runPreview() int {
	cfg, err := c.resolveConfig()
	if err != nil {
		return fail(err)
	}

	level, _, err := convert.LoadLevel(c.Preview.Path, cfg)
	if err != nil {
		return fail(err)
	}

	out := c.Preview.Out
	if out == "" {
		out = c.Preview.Path + ".png"
	}
	log.Info().Str("path", out).Msg("Rendering preview...")
	if err := preview.WriteFile(out, level, preview.Options{Scale: cfg.PreviewScale}); err != nil {
		return fail(err)
	}

	log.Info().Msg("Done!")
	return exitOK
}

func (c *cli) runSettings(stdout io.Writer) int {
	s := store()
	if s == nil {
		return fail(errors.New("saved settings are not available"))
	}

	saved := config.LoadSettings(s)
	if c.Settings.Reset {
		saved = config.Config{}
	}

	fileCfg, err := c.fileConfig()
	if err != nil {
		return fail(err)
	}
	flags := c.flags()
	updated := saved.Merge(fileCfg).Merge(flags)

	if c.Settings.Reset || c.Config != "" || flags != (config.Config{}) {
		if err := config.Default().Merge(updated).Validate(); err != nil {
			return fail(err)
		}
		if err := config.SaveSettings(s, updated); err != nil {
			return fail(err)
		}
		log.Info().Msg("Saved settings")
	}

	if c.Settings.Show {
		data, err := yaml.Marshal(updated)
		if err != nil {
			return fail(err)
		}
		if _, err := stdout.Write(data); err != nil {
			return fail(err)
		}
	}
	return exitOK
}

// fail logs err and picks the exit code for its class.
func fail(err error) int {
	log.Error().Err(err).Msg("conversion failed")

	var (
		parseErr   *leveldata.ParseError
		missingErr *leveldata.MissingFieldError
		writeErr   *export.WriteError
	)
	switch {
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &missingErr):
		return exitMissingField
	case errors.As(err, &writeErr):
		return exitWrite
	}
	return exitFailure
}

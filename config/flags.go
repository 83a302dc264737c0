package config

import (
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

const (
	// EnvVarPrefix prefixes every environment variable that can stand in for a flag.
	EnvVarPrefix = "GLOBE_"
)

func valueFromEnvString(key, defaultValue string) string {
	if v, ok := os.LookupEnv(EnvVarPrefix + key); ok {
		return v
	}
	return defaultValue
}

func valueFromEnvUint(key string, defaultValue uint) uint {
	if str, ok := os.LookupEnv(EnvVarPrefix + key); ok {
		if v, err := strconv.Atoi(str); err == nil && v >= 0 {
			return uint(v)
		}
	}
	return defaultValue
}

func valueFromEnvFloat64(key string, defaultValue float64) float64 {
	if str, ok := os.LookupEnv(EnvVarPrefix + key); ok {
		if v, err := strconv.ParseFloat(str, 64); err == nil {
			return v
		}
	}
	return defaultValue
}

func valueFromEnvBool(key string, defaultValue bool) bool {
	if str, ok := os.LookupEnv(EnvVarPrefix + key); ok {
		if v, err := strconv.ParseBool(str); err == nil {
			return v
		}
	}
	return defaultValue
}

// Flags holds what the command line and the GLOBE_* environment provided.
type Flags struct {
	ConfigPath string

	backend    string
	width      uint
	height     uint
	mapPath    string
	radius     float64
	steps      uint
	tickRate   float64
	frameLimit float64
	profile    bool
	logLevel   string
}

// flagBinding ties a flag to its environment key and the config field it overrides.
type flagBinding struct {
	name   string
	envKey string
	apply  func(f *Flags, cfg *Config)
}

var flagBindings = []flagBinding{
	{"backend", "BACKEND", func(f *Flags, cfg *Config) { cfg.Backend = f.backend }},
	{"width", "WIDTH", func(f *Flags, cfg *Config) { cfg.Width = int(f.width) }},
	{"height", "HEIGHT", func(f *Flags, cfg *Config) { cfg.Height = int(f.height) }},
	{"map", "MAP", func(f *Flags, cfg *Config) { cfg.MapPath = f.mapPath }},
	{"radius", "RADIUS", func(f *Flags, cfg *Config) { cfg.Radius = f.radius }},
	{"steps", "STEPS", func(f *Flags, cfg *Config) { cfg.Steps = int(f.steps) }},
	{"tick-rate", "TICK_RATE", func(f *Flags, cfg *Config) { cfg.TickRate = f.tickRate }},
	{"frame-limit", "FRAME_LIMIT", func(f *Flags, cfg *Config) { cfg.FrameLimit = f.frameLimit }},
	{"profile", "PROFILE", func(f *Flags, cfg *Config) { cfg.Profile = f.profile }},
	{"log-level", "LOG_LEVEL", func(f *Flags, cfg *Config) { cfg.LogLevel = f.logLevel }},
}

// BindFlags registers the globe flags on a flag set. Each flag defaults to its GLOBE_* environment
// variable when set and to Default otherwise.
//
// Parameters:
//   - flags: the command's flag set
//
// Returns:
//   - *Flags: receives the parsed values, pass it to Resolve after parsing
func BindFlags(flags *pflag.FlagSet) *Flags {
	def := Default()
	f := &Flags{}

	flags.StringVarP(&f.ConfigPath, "config", "c", valueFromEnvString("CONFIG", ""), "YAML configuration file.")
	flags.StringVar(&f.backend, "backend", valueFromEnvString("BACKEND", def.Backend), "front end to run, webgpu or ebiten.")
	flags.UintVar(&f.width, "width", valueFromEnvUint("WIDTH", uint(def.Width)), "width of the window.")
	flags.UintVar(&f.height, "height", valueFromEnvUint("HEIGHT", uint(def.Height)), "height of the window.")
	flags.StringVar(&f.mapPath, "map", valueFromEnvString("MAP", def.MapPath), "equirectangular PNG or JPEG base map, a graticule if empty.")
	flags.Float64Var(&f.radius, "radius", valueFromEnvFloat64("RADIUS", def.Radius), "globe radius in world units.")
	flags.UintVar(&f.steps, "steps", valueFromEnvUint("STEPS", uint(def.Steps)), "latitude bands of the globe mesh.")
	flags.Float64Var(&f.tickRate, "tick-rate", valueFromEnvFloat64("TICK_RATE", def.TickRate), "orbit updates per second.")
	flags.Float64Var(&f.frameLimit, "frame-limit", valueFromEnvFloat64("FRAME_LIMIT", def.FrameLimit), "render frame cap for the webgpu backend, 0 uncapped.")
	flags.BoolVar(&f.profile, "profile", valueFromEnvBool("PROFILE", def.Profile), "log frame statistics once per second.")
	flags.StringVar(&f.logLevel, "log-level", valueFromEnvString("LOG_LEVEL", def.LogLevel), "debug, info, warn or error.")
	return f
}

// Resolve loads the config file named by --config and lays explicitly set flags and set environment
// variables over it. Flags left at their default do not mask the file.
//
// Parameters:
//   - flags: the parsed flag set BindFlags registered on
//   - f: the values BindFlags returned
//
// Returns:
//   - Config: the final configuration
//   - error: load failure or every validation problem
func Resolve(flags *pflag.FlagSet, f *Flags) (Config, error) {
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	for _, b := range flagBindings {
		_, fromEnv := os.LookupEnv(EnvVarPrefix + b.envKey)
		if flags.Changed(b.name) || fromEnv {
			b.apply(f, &cfg)
		}
	}
	return cfg, cfg.Validate()
}

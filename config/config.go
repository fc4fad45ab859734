package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/wheel-of-names/constants"
	"github.com/lixenwraith/wheel-of-names/logger"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

const (
	configName = "wheel"
	envPrefix  = "WHEEL"
)

// SpinConfig controls spin timing
type SpinConfig struct {
	Duration float64 `mapstructure:"duration"` // seconds
	Slow     bool    `mapstructure:"slow"`
}

// ViewConfig mirrors wheel.ViewOptions
type ViewConfig struct {
	Limit           int      `mapstructure:"limit"`
	MergeDuplicates bool     `mapstructure:"merge_duplicates"`
	Exclude         []string `mapstructure:"exclude"`
}

// Options converts to the engine type
func (c ViewConfig) Options() wheel.ViewOptions {
	return wheel.ViewOptions{
		Limit:           c.Limit,
		MergeDuplicates: c.MergeDuplicates,
		Exclude:         append([]string(nil), c.Exclude...),
	}
}

// DisplayConfig controls what the wheel shows
type DisplayConfig struct {
	ViewConfig  `mapstructure:",squash"`
	Title       string `mapstructure:"title"`
	ShowTitle   bool   `mapstructure:"show_title"`
	ShowBorders bool   `mapstructure:"show_borders"`
	DarkMode    bool   `mapstructure:"dark_mode"`
	FPS         int    `mapstructure:"fps"`
}

// AfterConfig controls what happens when a spin settles
type AfterConfig struct {
	RemoveWinner bool `mapstructure:"remove_winner"`
	PlaySound    bool `mapstructure:"play_sound"`
	Confetti     bool `mapstructure:"confetti"`
}

// AudioConfig controls the speaker
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sample_rate"`
}

// Config is the full application configuration
type Config struct {
	File      string        `mapstructure:"file"`
	Names     []string      `mapstructure:"names"`
	Palette   []string      `mapstructure:"palette"`
	Debug     bool          `mapstructure:"debug"`
	Simulate  int           `mapstructure:"simulate"`
	Seed      uint64        `mapstructure:"seed"`
	Spin      SpinConfig    `mapstructure:"spin"`
	Selection ViewConfig    `mapstructure:"selection"`
	Display   DisplayConfig `mapstructure:"display"`
	After     AfterConfig   `mapstructure:"after"`
	Audio     AudioConfig   `mapstructure:"audio"`
	Log       logger.Config `mapstructure:"log"`
}

// Loader reads Config from flags, environment, a config file and defaults,
// in that order of precedence
type Loader struct {
	v     *viper.Viper
	flags *pflag.FlagSet
}

// NewLoader returns a loader with defaults applied and the standard search
// paths registered
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.wheel-of-names/")
	v.AddConfigPath("/etc/wheel-of-names/")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("file", "")
	v.SetDefault("names", constants.DefaultNames)
	v.SetDefault("palette", constants.DefaultPalette)
	v.SetDefault("debug", false)
	v.SetDefault("simulate", 0)
	v.SetDefault("seed", 0)

	v.SetDefault("spin.duration", constants.DefaultSpinDuration.Seconds())
	v.SetDefault("spin.slow", false)

	// selection.limit has no default; unset it follows display.limit
	v.SetDefault("selection.merge_duplicates", false)
	v.SetDefault("selection.exclude", []string{})

	v.SetDefault("display.limit", constants.DefaultDisplayLimit)
	// display.merge_duplicates and display.exclude have no defaults; unset
	// they follow the selection view
	v.SetDefault("display.title", "")
	v.SetDefault("display.show_title", true)
	v.SetDefault("display.show_borders", true)
	v.SetDefault("display.dark_mode", false)
	v.SetDefault("display.fps", int(1/constants.FrameUpdateInterval.Seconds()))

	v.SetDefault("after.remove_winner", false)
	v.SetDefault("after.play_sound", true)
	v.SetDefault("after.confetti", true)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", constants.DefaultMasterVolume)
	v.SetDefault("audio.sample_rate", constants.DefaultSampleRate)

	v.SetDefault("log.output", "none")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Flags registers the command line flags on fs and binds them to their keys
func (l *Loader) Flags(fs *pflag.FlagSet) error {
	fs.StringP("file", "f", "", "wheel document to load")
	fs.StringSlice("names", nil, "comma separated names (ignored when --file is given)")
	fs.Float64P("duration", "d", constants.DefaultSpinDuration.Seconds(), "spin duration in seconds")
	fs.Bool("slow", false, "double the spin duration")
	fs.Int("limit", 0, "maximum number of names that can win (default follows the display limit)")
	fs.StringSlice("exclude", nil, "glob patterns of names that can never win")
	fs.Bool("merge-duplicates", false, "fold entries with the same name into one sector")
	fs.String("title", "", "wheel title")
	fs.Bool("dark", false, "dark mode")
	fs.Bool("remove-winner", false, "remove the winner after each spin")
	fs.Bool("mute", false, "disable audio")
	fs.Bool("debug", false, "write debug logs to "+logger.DebugLogPath)
	fs.Int("simulate", 0, "run N headless spins and print the win distribution")
	fs.Uint64("seed", 0, "random seed (0 = random)")
	fs.String("config", "", "config file (default wheel.toml in ., ~/.wheel-of-names, /etc/wheel-of-names)")

	binds := map[string]string{
		"file":                       "file",
		"names":                      "names",
		"spin.duration":              "duration",
		"spin.slow":                  "slow",
		"selection.limit":            "limit",
		"selection.exclude":          "exclude",
		"selection.merge_duplicates": "merge-duplicates",
		"display.title":              "title",
		"display.dark_mode":          "dark",
		"after.remove_winner":        "remove-winner",
		"debug":                      "debug",
		"simulate":                   "simulate",
		"seed":                       "seed",
	}
	for key, name := range binds {
		if err := l.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	l.flags = fs
	return nil
}

// Read merges config from r in the given format (toml, yaml, json)
func (l *Loader) Read(r io.Reader, format string) error {
	l.v.SetConfigType(format)
	if err := l.v.ReadConfig(r); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads the config file if one is found, then unmarshals and validates
// the merged result. A missing config file is not an error.
func (l *Loader) Load() (*Config, error) {
	if l.flags != nil {
		if f := l.flags.Lookup("config"); f != nil && f.Value.String() != "" {
			l.v.SetConfigFile(f.Value.String())
		}
		if f := l.flags.Lookup("mute"); f != nil && f.Changed && f.Value.String() == "true" {
			l.v.Set("audio.enabled", false)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return l.Unmarshal()
}

// Unmarshal decodes the current settings without touching the file system
func (l *Loader) Unmarshal() (*Config, error) {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if !l.v.IsSet("selection.limit") {
		c.Selection.Limit = c.Display.Limit
	}
	if !l.v.IsSet("display.merge_duplicates") {
		c.Display.MergeDuplicates = c.Selection.MergeDuplicates
	}
	if !l.v.IsSet("display.exclude") {
		c.Display.Exclude = append([]string(nil), c.Selection.Exclude...)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ranges that the engine would otherwise reject late
func (c *Config) Validate() error {
	if c.Spin.Duration <= 0 {
		return fmt.Errorf("%w: spin.duration must be positive", wheel.ErrInvalidInput)
	}
	if c.Selection.Limit < 0 || c.Display.Limit < 0 {
		return fmt.Errorf("%w: view limits must not be negative", wheel.ErrInvalidInput)
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: display.fps must be positive", wheel.ErrInvalidInput)
	}
	if c.Simulate < 0 {
		return fmt.Errorf("%w: simulate must not be negative", wheel.ErrInvalidInput)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1]", wheel.ErrInvalidInput)
	}
	if len(c.Palette) == 0 {
		c.Palette = constants.DefaultPalette
	}
	return nil
}

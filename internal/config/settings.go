package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/handiism/greetcard/internal/model"
)

// EnvPrefix is the prefix of every environment override, e.g. GREETCARD_IMAGE_WIDTH.
const EnvPrefix = "GREETCARD"

// DownloaderBuiltin selects the in-process HTTP client instead of an external command.
const DownloaderBuiltin = "builtin"

// Settings holds all configuration options.
type Settings struct {
	// Image settings
	ImageWidth       int    `mapstructure:"image_width"`
	DefaultImagePath string `mapstructure:"default_image"`
	RendererCommand  string `mapstructure:"renderer"`

	// Album art cache
	ArtPathPrefix string `mapstructure:"art_prefix"`
	ArtMaxSize    int    `mapstructure:"art_max_size"`
	Downloader    string `mapstructure:"downloader"` // command name, or "builtin"

	// Info sources
	ClockCommand string `mapstructure:"clock"`
	QuoteCommand string `mapstructure:"quote"`

	Debug bool `mapstructure:"debug"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ImageWidth:       40,
		DefaultImagePath: "/home/flora/Downloads/moon.jpg",
		RendererCommand:  "catimg",

		ArtPathPrefix: model.DefaultArtPathPrefix,
		ArtMaxSize:    1000,
		Downloader:    "wget",

		ClockCommand: "timedatectl",
		QuoteCommand: "misfortune",

		Debug: false,
	}
}

// Load returns the default settings overlaid with GREETCARD_* environment variables.
//
// There is no configuration file; the environment is the only override source.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultSettings())

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("read %s_* environment: %w", EnvPrefix, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func setDefaults(v *viper.Viper, d *Settings) {
	v.SetDefault("image_width", d.ImageWidth)
	v.SetDefault("default_image", d.DefaultImagePath)
	v.SetDefault("renderer", d.RendererCommand)
	v.SetDefault("art_prefix", d.ArtPathPrefix)
	v.SetDefault("art_max_size", d.ArtMaxSize)
	v.SetDefault("downloader", d.Downloader)
	v.SetDefault("clock", d.ClockCommand)
	v.SetDefault("quote", d.QuoteCommand)
	v.SetDefault("debug", d.Debug)
}

// Validate reports settings that would make every run fail.
func (s *Settings) Validate() error {
	var errs []error
	if s.ImageWidth <= 0 {
		errs = append(errs, fmt.Errorf("%s_IMAGE_WIDTH must be positive, got %d", EnvPrefix, s.ImageWidth))
	}
	if s.ArtMaxSize <= 0 {
		errs = append(errs, fmt.Errorf("%s_ART_MAX_SIZE must be positive, got %d", EnvPrefix, s.ArtMaxSize))
	}
	for name, value := range map[string]string{
		"DEFAULT_IMAGE": s.DefaultImagePath,
		"RENDERER":      s.RendererCommand,
		"ART_PREFIX":    s.ArtPathPrefix,
		"DOWNLOADER":    s.Downloader,
		"CLOCK":         s.ClockCommand,
		"QUOTE":         s.QuoteCommand,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s_%s must not be empty", EnvPrefix, name))
		}
	}
	return errors.Join(errs...)
}

// UseBuiltinDownloader reports whether art should be fetched in-process.
func (s *Settings) UseBuiltinDownloader() bool {
	return strings.EqualFold(s.Downloader, DownloaderBuiltin)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	AppRoot  string   `mapstructure:"app_root"` // directory relative paths are resolved against
	Log      Log      `mapstructure:"log"`
	Window   Window   `mapstructure:"window"`
	Data     Data     `mapstructure:"data"`
	Database Database `mapstructure:"database"`
	GPS      GPS      `mapstructure:"gps"`
	Quiz     Quiz     `mapstructure:"quiz"`
	Map      Map      `mapstructure:"map"`
}

type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	JSON  bool   `mapstructure:"json"`  // JSON lines instead of console output
}

type Window struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

// Data points at the static JSON content files.
type Data struct {
	Alerts       string `mapstructure:"alerts"`
	Instructions string `mapstructure:"instructions"`
	Questions    string `mapstructure:"questions"`
	Resources    string `mapstructure:"resources"`
}

type Database struct {
	Path string `mapstructure:"path"`
}

type GPS struct {
	Endpoint   string        `mapstructure:"endpoint"`    // ip-api compatible JSON endpoint
	Timeout    time.Duration `mapstructure:"timeout"`     // bound on a single lookup
	ExportPath string        `mapstructure:"export_path"` // flat "lat,lon" file
}

type Quiz struct {
	AnswerDelay time.Duration `mapstructure:"answer_delay"`
}

type Map struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Zoom      int     `mapstructure:"zoom"`
	TileURL   string  `mapstructure:"tile_url"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads .env, an optional config.yaml and SAFEGUARD_* environment
// variables, then resolves every file path against AppRoot.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("SAFEGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_root", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("window.width", 375)
	v.SetDefault("window.height", 667)
	v.SetDefault("data.alerts", "assets/data/disaster_alerts.json")
	v.SetDefault("data.instructions", "assets/data/disaster_info.json")
	v.SetDefault("data.questions", "assets/data/quiz_questions.json")
	v.SetDefault("data.resources", "assets/data/resource_links.json")
	v.SetDefault("database.path", "assets/data/contacts.db")
	v.SetDefault("gps.endpoint", "http://ip-api.com/json/")
	v.SetDefault("gps.timeout", "5s")
	v.SetDefault("gps.export_path", "assets/data/coordinates.txt")
	v.SetDefault("quiz.answer_delay", "1s")
	v.SetDefault("map.latitude", 13.0827)
	v.SetDefault("map.longitude", 80.2707)
	v.SetDefault("map.zoom", 10)
	v.SetDefault("map.tile_url", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
}

func (c *Config) resolve() error {
	if c.AppRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		c.AppRoot = wd
	}

	if c.Quiz.AnswerDelay < 0 {
		return fmt.Errorf("%w: quiz.answer_delay must not be negative", ErrInvalidConfig)
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 19 {
		return fmt.Errorf("%w: map.zoom %d outside 0..19", ErrInvalidConfig, c.Map.Zoom)
	}

	c.Data.Alerts = c.Path(c.Data.Alerts)
	c.Data.Instructions = c.Path(c.Data.Instructions)
	c.Data.Questions = c.Path(c.Data.Questions)
	c.Data.Resources = c.Path(c.Data.Resources)
	c.Database.Path = c.Path(c.Database.Path)
	c.GPS.ExportPath = c.Path(c.GPS.ExportPath)

	return nil
}

// Path resolves p against AppRoot unless it is already absolute.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.AppRoot, p)
}

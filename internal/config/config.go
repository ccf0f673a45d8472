package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/username/calendar-layout/internal/position"
	"github.com/username/calendar-layout/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Events   EventsConfig   `mapstructure:"events"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents how the calendar is rendered
type CalendarConfig struct {
	Locale        string              `mapstructure:"locale"`       // xx-XX, e.g. "en-US"
	DefaultMode   string              `mapstructure:"default_mode"` // "month", "week" or "day"
	WeekStart     string              `mapstructure:"week_start"`   // "monday" or "sunday"
	DayBoundaries DayBoundariesConfig `mapstructure:"day_boundaries"`
}

// DayBoundariesConfig is the visible part of a day in whole hours (0-24)
type DayBoundariesConfig struct {
	Start int `mapstructure:"start"`
	End   int `mapstructure:"end"`
}

// EventsConfig represents where events are read from
type EventsConfig struct {
	File    string `mapstructure:"file"`     // YAML or JSON events file
	ICSFile string `mapstructure:"ics_file"` // optional iCalendar file
}

// SeedConfig represents defaults for the seed command
type SeedConfig struct {
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"` // "yaml" or "ics"
}

// LogConfig represents logger configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			Locale:        "en-US",
			DefaultMode:   "week",
			WeekStart:     "monday",
			DayBoundaries: DayBoundariesConfig{Start: 0, End: 24},
		},
		Seed: SeedConfig{
			Output: "seeded-events.yaml",
			Format: "yaml",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from file.
// A missing file is not an error when no explicit path is given: defaults are used instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.qalendar")
		v.AddConfigPath("/etc/qalendar")
	}

	// Read environment variables
	v.SetEnvPrefix("QALENDAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.ExpandEnvVars()

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("calendar.locale", d.Calendar.Locale)
	v.SetDefault("calendar.default_mode", d.Calendar.DefaultMode)
	v.SetDefault("calendar.week_start", d.Calendar.WeekStart)
	v.SetDefault("calendar.day_boundaries.start", d.Calendar.DayBoundaries.Start)
	v.SetDefault("calendar.day_boundaries.end", d.Calendar.DayBoundaries.End)
	v.SetDefault("events.file", "")
	v.SetDefault("events.ics_file", "")
	v.SetDefault("seed.output", d.Seed.Output)
	v.SetDefault("seed.format", d.Seed.Format)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", d.Log.Level)
}

// Validate validates the configuration.
// Locale and default mode are advisory and are checked by the warnings package instead.
func (c *Config) Validate() error {
	switch c.Calendar.WeekStart {
	case "", "monday", "sunday":
	default:
		return fmt.Errorf("calendar.week_start must be 'monday' or 'sunday', got '%s'", c.Calendar.WeekStart)
	}

	b := c.Calendar.DayBoundaries
	if b.Start < 0 || b.Start > 24 || b.End < 0 || b.End > 24 {
		return fmt.Errorf("calendar.day_boundaries must be between 0 and 24, got %d-%d", b.Start, b.End)
	}
	if b.End <= b.Start {
		return fmt.Errorf("calendar.day_boundaries.end (%d) must be after start (%d)", b.End, b.Start)
	}

	switch c.Seed.Format {
	case "", "yaml", "ics":
	default:
		return fmt.Errorf("seed.format must be 'yaml' or 'ics', got '%s'", c.Seed.Format)
	}

	return nil
}

// GetWeekStart returns the configured first day of the week. Default: Monday
func (c *CalendarConfig) GetWeekStart() time.Weekday {
	return dateutil.ParseWeekday(c.WeekStart)
}

// GetDayBoundaryUnits returns the visible part of the day in day units
func (c *CalendarConfig) GetDayBoundaryUnits() (start, end int) {
	return position.HoursToDayUnits(c.DayBoundaries.Start), position.HoursToDayUnits(c.DayBoundaries.End)
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Events.File = os.ExpandEnv(c.Events.File)
	c.Events.ICSFile = os.ExpandEnv(c.Events.ICSFile)
	c.Seed.Output = os.ExpandEnv(c.Seed.Output)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mbarthauer/audiothek2rss/internal/feed"
)

// DefaultEndpoint is the Audiothek GraphQL query endpoint.
const DefaultEndpoint = "https://api.ardaudiothek.de/graphql"

// DefaultOutputTemplate is the feed file name pattern; %d receives the numeric program ID.
const DefaultOutputTemplate = "ardaudiothek_%d.rss"

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "audiothek2rss/1.0"

type Config struct {
	Endpoint      string `mapstructure:"endpoint"`
	ClientTimeout string `mapstructure:"client_timeout"` // Go duration string like "30s", "1h", etc.
	UserAgent     string `mapstructure:"user_agent"`
	LogLevel      string `mapstructure:"log_level"`

	CategoryIDs    []int  `mapstructure:"category_ids"`
	CategorySearch string `mapstructure:"category_search"`
	ProgramIDs     []int  `mapstructure:"program_ids"`
	ProgramSearch  string `mapstructure:"program_search"`

	MaxPrograms int    `mapstructure:"max_programs"` // 0 = unlimited
	Pagination  int    `mapstructure:"pagination"`   // program sets per listing page
	Latest      int    `mapstructure:"latest"`       // episodes per program set
	HTML        bool   `mapstructure:"html"`
	OutputDir   string `mapstructure:"directory"`
	Output      string `mapstructure:"output"` // feed file name template with one %d

	Metrics struct {
		Enabled bool   `mapstructure:"enabled"`
		Address string `mapstructure:"address"`
		Port    int    `mapstructure:"port"`
	} `mapstructure:"metrics"`

	// Args is the original invocation argument string, shown on the HTML index.
	Args string `mapstructure:"-"`
}

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:     os.Stderr,
	NoColor: false,
}).With().Timestamp().Logger()

// Load parses command-line arguments, merges them with the optional config
// file and APP_* environment variables, validates the result and configures
// the global log level. It performs no network I/O.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("audiothek2rss", pflag.ContinueOnError)
	flags.IntSlice("category-id", nil, "Audiothek category ID")
	flags.String("category-search", "", "Audiothek category search term")
	flags.IntSlice("program-id", nil, "Audiothek program ID")
	flags.String("program-search", "", "Audiothek program search term")
	flags.Int("max-programs", 0, "process at most this number of programs")
	flags.Int("pagination", 100, "query at most this number of datasets at once")
	flags.Int("latest", 10, "return only the last n items per program")
	flags.Bool("html", false, "create HTML overview of found items")
	flags.StringP("directory", "d", "rss", "base directory for HTML and RSS output files")
	flags.StringP("output", "o", DefaultOutputTemplate, "output RSS file name template")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("endpoint", "", "Audiothek GraphQL endpoint")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Set defaults
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", "localhost")
	v.SetDefault("metrics.port", 9090)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Flags win over config file and environment.
	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Args = strings.Join(args, " ")

	setupLogger(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// bindFlags maps the dashed flag names onto the config keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	byKey := map[string]string{
		"category_ids":    "category-id",
		"category_search": "category-search",
		"program_ids":     "program-id",
		"program_search":  "program-search",
		"max_programs":    "max-programs",
		"pagination":      "pagination",
		"latest":          "latest",
		"html":            "html",
		"directory":       "directory",
		"output":          "output",
	}
	for key, name := range byKey {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	// Ambient flags only override the config file when explicitly set.
	for key, name := range map[string]string{"log_level": "log-level", "endpoint": "endpoint"} {
		if flag := flags.Lookup(name); flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}
	return nil
}

// validate enforces the option rules before any network call is made.
func validate(config *Config) error {
	if info, err := os.Stat(config.OutputDir); err != nil || !info.IsDir() {
		return fmt.Errorf("the output directory %s does not exist", config.OutputDir)
	}
	if config.Pagination <= 0 {
		return fmt.Errorf("pagination must be positive, got %d", config.Pagination)
	}
	if config.Latest <= 0 {
		return fmt.Errorf("latest must be positive, got %d", config.Latest)
	}

	// Explicit program IDs silence the other selectors.
	if len(config.ProgramIDs) > 0 && (config.ProgramSearch != "" || len(config.CategoryIDs) > 0 || config.CategorySearch != "") {
		logger.Warn().Msg("The program-id argument overrides eventual restrictions by program-search and category-id")
		config.ProgramSearch = ""
		config.CategoryIDs = nil
		config.CategorySearch = ""
	}

	if corrected, changed := feed.NormalizeTemplate(config.Output); changed {
		logger.Warn().Str("template", corrected).Msg("The output file name template has been corrected")
		config.Output = corrected
	}
	return nil
}

func setupLogger(config *Config) {
	level := zerolog.InfoLevel // default
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)
}

// GetLogger returns the process-wide logger.
func GetLogger() zerolog.Logger {
	return logger
}

// Package config loads turkmenfst settings from defaults, an optional
// YAML file and TURKMENFST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/turkmen-nlp/turkmenfst"
)

// EnvPrefix is the prefix of environment overrides, e.g.
// TURKMENFST_SERVER_ADDR.
const EnvPrefix = "TURKMENFST"

// Config is the complete configuration.
type Config struct {
	Lexicon  string         `yaml:"lexicon" mapstructure:"lexicon"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Analyzer AnalyzerConfig `yaml:"analyzer" mapstructure:"analyzer"`
}

// ServerConfig configures the REST server.
type ServerConfig struct {
	Addr        string   `yaml:"addr" mapstructure:"addr"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	// RateLimit is requests per second per client; 0 disables limiting.
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// AnalyzerConfig mirrors turkmenfst.AnalyzerOptions.
type AnalyzerConfig struct {
	Workers       int           `yaml:"workers" mapstructure:"workers"`
	MaxCandidates int           `yaml:"max_candidates" mapstructure:"max_candidates"`
	CacheTTL      time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	CacheCleanup  time.Duration `yaml:"cache_cleanup" mapstructure:"cache_cleanup"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lexicon: "data/lexicon.txt",
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
			RateLimit:   20,
			RateBurst:   40,
		},
		Analyzer: AnalyzerConfig{
			Workers:      4,
			CacheTTL:     10 * time.Minute,
			CacheCleanup: 20 * time.Minute,
		},
	}
}

// Options converts the analyzer section.
func (c Config) Options() turkmenfst.AnalyzerOptions {
	return turkmenfst.AnalyzerOptions{
		Workers:       c.Analyzer.Workers,
		MaxCandidates: c.Analyzer.MaxCandidates,
		CacheTTL:      c.Analyzer.CacheTTL,
		CacheCleanup:  c.Analyzer.CacheCleanup,
	}
}

// Dir returns $HOME/.turkmenfst.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".turkmenfst"), nil
}

// SetDefaults registers every key of Default on v, which also makes
// the keys visible to AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("lexicon", d.Lexicon)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.cors_origins", d.Server.CORSOrigins)
	v.SetDefault("server.rate_limit", d.Server.RateLimit)
	v.SetDefault("server.rate_burst", d.Server.RateBurst)
	v.SetDefault("analyzer.workers", d.Analyzer.Workers)
	v.SetDefault("analyzer.max_candidates", d.Analyzer.MaxCandidates)
	v.SetDefault("analyzer.cache_ttl", d.Analyzer.CacheTTL)
	v.SetDefault("analyzer.cache_cleanup", d.Analyzer.CacheCleanup)
}

// Prepare points v at cfgFile, or at $HOME/.turkmenfst/config.yaml when
// cfgFile is empty, and enables the environment overrides.
func Prepare(v *viper.Viper, cfgFile string) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read reads the config file of a prepared v. A missing default file
// is not an error.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

// Decode unmarshals the settings of v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Load builds a Config from defaults, cfgFile (or the default file)
// and the environment.
func Load(cfgFile string) (Config, error) {
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
	}
	v := viper.New()
	Prepare(v, cfgFile)
	if err := Read(v); err != nil {
		return Config{}, err
	}
	return Decode(v)
}

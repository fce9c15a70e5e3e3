package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moonwalker/cfmodels"
)

const (
	defaultConfigFile  = "cfmodels.yaml"
	defaultEnvFile     = ".env"
	defaultEnvironment = "master"
	defaultLang        = "csharp"
	defaultLogLevel    = "info"
)

// Config is resolved from the config file, then the environment, then the
// command line flags; later sources win.
type Config struct {
	ApiKey         string `mapstructure:"apiKey"`
	SpaceID        string `mapstructure:"spaceId"`
	Environment    string `mapstructure:"environment"`
	Namespace      string `mapstructure:"namespace"`
	Path           string `mapstructure:"path"`
	Lang           string `mapstructure:"lang"`
	OnConflict     string `mapstructure:"onConflict"`
	Force          bool   `mapstructure:"force"`
	SchemaFile     string `mapstructure:"schemaFile"`
	Host           string `mapstructure:"host"`
	Preview        bool   `mapstructure:"preview"`
	GoModelPackage string `mapstructure:"goModelPackage"`
	LogLevel       string `mapstructure:"logLevel"`
}

func defaultConfig() *Config {
	return &Config{
		Environment:    defaultEnvironment,
		Namespace:      cfmodels.DefaultNamespace,
		Lang:           defaultLang,
		OnConflict:     cfmodels.ConflictPrompt.String(),
		GoModelPackage: cfmodels.DefaultGoModelPackage,
		LogLevel:       defaultLogLevel,
	}
}

func loadConfig(cmd *cobra.Command, flags *Config, path string, envFile string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := parseConfig(data, cfg); err != nil {
			return nil, usageError{fmt.Errorf("config %s: %w", path, err)}
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, usageError{fmt.Errorf("reading config: %w", err)}
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, usageError{fmt.Errorf("loading %s: %w", envFile, err)}
	}
	cfg.applyEnv()

	cfg.applyFlags(cmd, flags)

	return cfg, nil
}

func parseConfig(data []byte, cfg *Config) error {
	m := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &m); err != nil {
		if jsonErr := json.Unmarshal(data, &m); jsonErr != nil {
			return err
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}

func (c *Config) applyEnv() {
	setFromEnv(&c.ApiKey, "CONTENTFUL_API_KEY")
	setFromEnv(&c.SpaceID, "CONTENTFUL_SPACE_ID")
	setFromEnv(&c.Environment, "CONTENTFUL_ENVIRONMENT")
	setFromEnv(&c.Host, "CONTENTFUL_HOST")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) applyFlags(cmd *cobra.Command, f *Config) {
	changed := cmd.Flags().Changed

	if changed("api-key") {
		c.ApiKey = f.ApiKey
	}
	if changed("space-id") {
		c.SpaceID = f.SpaceID
	}
	if changed("environment") {
		c.Environment = f.Environment
	}
	if changed("namespace") {
		c.Namespace = f.Namespace
	}
	if changed("path") {
		c.Path = f.Path
	}
	if changed("lang") {
		c.Lang = f.Lang
	}
	if changed("on-conflict") {
		c.OnConflict = f.OnConflict
	}
	if changed("force") {
		c.Force = f.Force
	}
	if changed("schema-file") {
		c.SchemaFile = f.SchemaFile
	}
	if changed("host") {
		c.Host = f.Host
	}
	if changed("preview") {
		c.Preview = f.Preview
	}
	if changed("go-model-package") {
		c.GoModelPackage = f.GoModelPackage
	}
	if changed("log-level") {
		c.LogLevel = f.LogLevel
	}
}

func (c *Config) validate() error {
	if c.SchemaFile != "" {
		return nil
	}
	if c.ApiKey == "" {
		return usageError{errors.New("you must specify the Contentful API key for the Content Delivery API")}
	}
	if c.SpaceID == "" {
		return usageError{errors.New("you must specify the space id to fetch content types from")}
	}
	return nil
}

func (c *Config) conflictPolicy() (cfmodels.ConflictPolicy, error) {
	if c.Force {
		return cfmodels.ConflictOverwrite, nil
	}
	p, err := cfmodels.ParseConflictPolicy(c.OnConflict)
	if err != nil {
		return p, usageError{err}
	}
	return p, nil
}

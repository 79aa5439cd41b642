// config/config.go
//
// Runtime configuration for the homework-groups server and CLI. Values come
// from built-in defaults, then an optional YAML file, then HWG_* environment
// variables.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
	"homework-groups-go/grouping"
	"homework-groups-go/workbook"
)

// DefaultConfigFile is looked up in the working directory when no path is given
const DefaultConfigFile = "homework-groups.yaml"

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	MaxUploadMB   int64  `yaml:"max_upload_mb"`
	MetricsPath   string `yaml:"metrics_path"`
	MetricsPrefix string `yaml:"metrics_namespace"`
}

// RedisConfig configures the plan store
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// FilesConfig names the inputs and output used by the batch CLI
type FilesConfig struct {
	CampusRoster string `yaml:"campus_roster"`
	OnlineRoster string `yaml:"online_roster"`
	TARoster     string `yaml:"ta_roster"`
	Output       string `yaml:"output"`
}

// Config models homework-groups.yaml
type Config struct {
	Server   ServerConfig     `yaml:"server"`
	Redis    RedisConfig      `yaml:"redis"`
	Grouping grouping.Options `yaml:"grouping"`
	Workbook workbook.Options `yaml:"workbook"`
	Files    FilesConfig      `yaml:"files"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			MaxUploadMB:   16,
			MetricsPath:   "/metrics",
			MetricsPrefix: "homework_groups",
		},
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
			DB:   8,
		},
		Grouping: grouping.DefaultOptions(),
		Workbook: workbook.DefaultOptions(),
		Files: FilesConfig{
			CampusRoster: "sheets/CampusRoster.xlsx",
			OnlineRoster: "sheets/OnlineRoster.xlsx",
			TARoster:     "sheets/TARoster.txt",
			Output:       "HomeworkGroups.xlsx",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path falls back to DefaultConfigFile, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Grouping.Validate(); err != nil {
		return Config{}, fmt.Errorf("grouping config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strVars := map[string]*string{
		"HWG_SERVER_ADDR":    &c.Server.Addr,
		"HWG_REDIS_ADDR":     &c.Redis.Addr,
		"HWG_REDIS_PASSWORD": &c.Redis.Password,
		"HWG_OUTPUT":         &c.Files.Output,
	}
	for name, dst := range strVars {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	intVars := map[string]*int{
		"HWG_REDIS_DB":       &c.Redis.DB,
		"HWG_NUM_GROUPS":     &c.Grouping.NumGroups,
		"HWG_MIN_GROUP_SIZE": &c.Grouping.MinGroupSize,
		"HWG_MAX_GROUP_SIZE": &c.Grouping.MaxGroupSize,
	}
	for name, dst := range intVars {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
	}
	return nil
}

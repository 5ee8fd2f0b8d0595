package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Address             string   `yaml:"address"`
	RecentThreadsLimit  int      `yaml:"recent_threads_limit"`  // threads returned by the board listing
	RepliesPreviewLimit int      `yaml:"replies_preview_limit"` // newest replies shown per thread in the listing
	LogLevel            string   `yaml:"log_level"`
	LogJSON             bool     `yaml:"log_json"`
	CorsOrigins         []string `yaml:"cors_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg Pg `yaml:"pg"`
}

const (
	DefaultRecentThreadsLimit  = 10
	DefaultRepliesPreviewLimit = 3
)

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Address == "" {
		c.Public.Address = ":8080"
	}
	if c.Public.RecentThreadsLimit <= 0 {
		c.Public.RecentThreadsLimit = DefaultRecentThreadsLimit
	}
	if c.Public.RepliesPreviewLimit <= 0 {
		c.Public.RepliesPreviewLimit = DefaultRepliesPreviewLimit
	}
}

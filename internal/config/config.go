// Package config loads server settings from an optional yaml file with
// environment overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Config holds everything the server needs at startup.
type Config struct {
	SiteTitle  string `yaml:"siteTitle"`
	Port       string `yaml:"port"`
	GithubUser string `yaml:"githubUser"`
	// AssetDir holds the pre-rendered contribution SVGs.
	AssetDir string `yaml:"assetDir"`
	// DataDir holds the sqlite database for the private blog.
	DataDir string `yaml:"dataDir"`
	// MinLoadingMs is the contributions widget's minimum load time.
	MinLoadingMs int `yaml:"minLoadingMs"`
	// BlogPassword is the private blog's shared secret. It gates a personal
	// notes page from casual visitors and is not an access-control boundary.
	BlogPassword string `yaml:"blogPassword"`
}

func defaults() Config {
	return Config{
		SiteTitle:    "Vehan Rajintha",
		Port:         "8080",
		GithubUser:   "VehanRajintha",
		AssetDir:     "static/contribs",
		DataDir:      "data",
		MinLoadingMs: 1500,
		BlogPassword: "SNK123",
	}
}

// Load reads the yaml file at path when it exists, then applies env
// overrides. A missing file just means defaults; a malformed file is an
// error.
func Load(path string) (Config, error) {
	cfg := defaults()

	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("GITHUB_USER"); v != "" {
		cfg.GithubUser = v
	}
	if v := os.Getenv("BLOG_PASSWORD"); v != "" {
		cfg.BlogPassword = v
	}
	if v := os.Getenv("CONTRIB_ASSET_DIR"); v != "" {
		cfg.AssetDir = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("MIN_LOADING_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.MinLoadingMs = ms
		}
	}
	return cfg, nil
}

// Package config holds process-wide settings and optional user defaults.
//
// Settings come from the environment (with .env support) and are resolved
// once at startup into an explicit struct; nothing in the program reads
// environment variables after that. Defaults are an optional YAML file
// that pre-fills CLI flag values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-dcv/internal/fileutil"
	"github.com/alnah/go-dcv/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Environment variable names.
const (
	EnvAppName   = "DCV_APP_NAME"
	EnvOutputDir = "DCV_OUTPUT_DIR"
)

// Built-in fallbacks when the environment is silent.
const (
	DefaultAppName   = "dcv"
	DefaultOutputDir = "dcv_output"
)

// Settings holds environment-derived application settings.
type Settings struct {
	AppName   string // display name used in output and version reporting
	OutputDir string // default output directory for converted files
}

// LoadSettings builds Settings from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables win over .env values (godotenv does not override).
func LoadSettings() *Settings {
	_ = godotenv.Load()

	s := &Settings{
		AppName:   DefaultAppName,
		OutputDir: DefaultOutputDir,
	}
	if v := os.Getenv(EnvAppName); v != "" {
		s.AppName = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		s.OutputDir = v
	}
	return s
}

// Defaults holds user-provided flag defaults loaded from a YAML file.
// CLI flags always override these values.
type Defaults struct {
	Input  InputDefaults  `yaml:"input"`
	Output OutputDefaults `yaml:"output"`
	CSS    CSSDefaults    `yaml:"css"`
}

// InputDefaults defines input source defaults.
type InputDefaults struct {
	DefaultDir string `yaml:"defaultDir"` // default input directory (empty = must specify)
}

// OutputDefaults defines output destination defaults.
type OutputDefaults struct {
	DefaultDir string `yaml:"defaultDir"` // default output directory (empty = settings value)
}

// CSSDefaults defines styling defaults.
type CSSDefaults struct {
	Path string `yaml:"path"` // custom stylesheet path (empty = bundled)
}

// LoadDefaults loads flag defaults from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's treated as a config name searched in standard locations.
// Returns an error if the file is not found (no silent fallback).
func LoadDefaults(nameOrPath string) (*Defaults, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var d Defaults
	if err := yamlutil.UnmarshalStrict(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &d, nil
}

// SearchLocations lists the paths a config name is resolved against, in
// search order: current directory first, then the user config directory,
// with .yaml tried before .yml in each.
func SearchLocations(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "dcv", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in SearchLocations order.
func resolveConfigPath(name string) (string, error) {
	paths := SearchLocations(name)
	for _, path := range paths {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

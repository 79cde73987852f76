package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvSeed     = "CANFIELD_SEED"
	EnvLogLevel = "CANFIELD_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	// Seed for dealing. Zero deals a fresh random game each time.
	Seed       uint64      `toml:"seed"`
	LogLevel   string      `toml:"log_level"`
	CardsFile  string      `toml:"cards_file"`
	MovesFile  string      `toml:"moves_file"`
	PolicyFile string      `toml:"policy_file"`
	Agent      AgentConfig `toml:"agent"`
	Theme      ThemeConfig `toml:"theme"`
}

// AgentConfig holds the learning and episode parameters
type AgentConfig struct {
	LearningRate float64 `toml:"learning_rate"`
	Discount     float64 `toml:"discount"`
	Epsilon      float64 `toml:"epsilon"`
	MaxSteps     int     `toml:"max_steps"`
}

// ThemeConfig holds hex colors for the board display
type ThemeConfig struct {
	Red    string `toml:"red"`
	Black  string `toml:"black"`
	Hidden string `toml:"hidden"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "canfield", "config.toml")
}

// GetDefaultPolicyPath returns where learned policies are kept unless configured otherwise
func GetDefaultPolicyPath() string {
	return filepath.Join(GetXDGDataHome(), "canfield", "policy.toml")
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		PolicyFile: GetDefaultPolicyPath(),
		Agent: AgentConfig{
			LearningRate: 0.1,
			Discount:     0.95,
			Epsilon:      0.1,
			MaxSteps:     500,
		},
		Theme: ThemeConfig{
			Red:    "#e05252",
			Black:  "#d0d0d0",
			Hidden: "#5f87af",
		},
	}
}

// LoadDotEnv loads a .env file from the working directory if there is one
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("error loading .env: %v", err)
	}
	return nil
}

// LoadConfig loads the config file, creating it with defaults if missing,
// then applies environment overrides
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config, err = LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile decodes a config file on top of the defaults
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	fillDefaults(config)
	return config, nil
}

// fillDefaults replaces zero values that would break the agent
func fillDefaults(c *Config) {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.PolicyFile == "" {
		c.PolicyFile = d.PolicyFile
	}
	if c.Agent.MaxSteps <= 0 {
		c.Agent.MaxSteps = d.Agent.MaxSteps
	}
	if c.Agent.LearningRate <= 0 {
		c.Agent.LearningRate = d.Agent.LearningRate
	}
	if c.Agent.Discount <= 0 {
		c.Agent.Discount = d.Agent.Discount
	}
	if c.Theme.Red == "" {
		c.Theme.Red = d.Theme.Red
	}
	if c.Theme.Black == "" {
		c.Theme.Black = d.Theme.Black
	}
	if c.Theme.Hidden == "" {
		c.Theme.Hidden = d.Theme.Hidden
	}
}

func applyEnv(c *Config) error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config to the config file
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetSeed stores a fixed deal seed in the config
func SetSeed(seed uint64) error {
	config, err := loadStored()
	if err != nil {
		return err
	}
	config.Seed = seed
	return Save(config)
}

// loadStored reads the config file without environment overrides, so they
// are never written back to disk
func loadStored() (*Config, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(configPath)
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the host-side application configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Stream StreamConfig `yaml:"stream"`
	Stats  StatsConfig  `yaml:"stats"`
	Mock   MockConfig   `yaml:"mock"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// StreamConfig contains CSV replay parameters.
type StreamConfig struct {
	CSVPath    string `yaml:"csv_path"`
	RatePerSec int    `yaml:"rate_per_sec"` // DATA lines per second, clamped to 1-50
}

// StatsConfig contains record statistics parameters.
type StatsConfig struct {
	WindowSize int `yaml:"window_size"` // Recent records kept for queries
}

// MockConfig contains mock device configuration.
type MockConfig struct {
	TelemetryInterval time.Duration `yaml:"telemetry_interval"` // Synthetic telemetry cadence
	TemperatureC      float64       `yaml:"temperature_c"`      // Base simulated temperature
	HumidityRH        float64       `yaml:"humidity_rh"`        // Base simulated humidity
	PressureKPa       float64       `yaml:"pressure_kpa"`       // Base simulated pressure
	NoiseLevel        float64       `yaml:"noise_level"`        // Amplitude of simulated drift
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			Baud: 115200,
		},
		Stream: StreamConfig{
			CSVPath:    "Crawdad.csv",
			RatePerSec: 20,
		},
		Stats: StatsConfig{
			WindowSize: 1000,
		},
		Mock: MockConfig{
			TelemetryInterval: time.Second,
			TemperatureC:      22.5,
			HumidityRH:        45.0,
			PressureKPa:       101.3,
			NoiseLevel:        0.5,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}

	if c.Stream.CSVPath == "" {
		c.Stream.CSVPath = def.Stream.CSVPath
	}
	if c.Stream.RatePerSec == 0 {
		c.Stream.RatePerSec = def.Stream.RatePerSec
	}

	if c.Stats.WindowSize == 0 {
		c.Stats.WindowSize = def.Stats.WindowSize
	}

	if c.Mock.TelemetryInterval == 0 {
		c.Mock.TelemetryInterval = def.Mock.TelemetryInterval
	}
	if c.Mock.TemperatureC == 0 {
		c.Mock.TemperatureC = def.Mock.TemperatureC
	}
	if c.Mock.HumidityRH == 0 {
		c.Mock.HumidityRH = def.Mock.HumidityRH
	}
	if c.Mock.PressureKPa == 0 {
		c.Mock.PressureKPa = def.Mock.PressureKPa
	}
}

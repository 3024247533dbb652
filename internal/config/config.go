// Package config provides layered configuration for cpusched.
// Priority: defaults < user < project < explicit file < env < flags
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds all cpusched configuration.
type Config struct {
	Version int `yaml:"version"`

	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig controls how runs are set up.
type SimulationConfig struct {
	DefaultQuantum  int      `yaml:"default_quantum"`  // RR files without a quantum line
	ComparePolicies []string `yaml:"compare_policies"` // empty = every applicable policy
	Workers         int      `yaml:"workers"`          // 0 = NumCPU
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // table | yaml | json
	Color  *bool  `yaml:"color"`
	XLSX   string `yaml:"xlsx"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | text
}

// ColorEnabled reports whether styled output is on. Unset means on.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// Default returns the default configuration.
func Default() *Config {
	color := true
	return &Config{
		Version: 1,
		Simulation: SimulationConfig{
			DefaultQuantum:  2,
			ComparePolicies: nil,
			Workers:         0,
		},
		Output: OutputConfig{
			Format: "table",
			Color:  &color,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Manager handles configuration loading and merging.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	paths  []string // Paths that were loaded
	extra  string   // explicit --config file
	getenv func(string) string
}

// NewManager creates a new configuration manager. extra is an explicit
// config file that must exist when non-empty.
func NewManager(extra string) *Manager {
	return &Manager{
		config: Default(),
		extra:  extra,
		getenv: os.Getenv,
	}
}

// Load loads configuration from all sources in priority order.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = Default()
	m.paths = nil

	for _, path := range m.getConfigPaths() {
		if err := m.loadFile(path); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("load config %s: %w", path, err)
			}
		} else {
			m.paths = append(m.paths, path)
		}
	}

	if m.extra != "" {
		if err := m.loadFile(m.extra); err != nil {
			return fmt.Errorf("load config %s: %w", m.extra, err)
		}
		m.paths = append(m.paths, m.extra)
	}

	return m.loadEnv()
}

// getConfigPaths returns implicit config file paths in priority order.
func (m *Manager) getConfigPaths() []string {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, UserPath(home))
	}

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".cpusched.yaml"))
	}

	return paths
}

// UserPath is the per-user config file under home.
func UserPath(home string) string {
	return filepath.Join(home, ".cpusched", "config.yaml")
}

// loadFile loads a single config file and merges it.
func (m *Manager) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var partial Config
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return err
	}

	m.merge(&partial)
	return nil
}

// merge merges non-zero values from src into config.
func (m *Manager) merge(src *Config) {
	if src.Simulation.DefaultQuantum != 0 {
		m.config.Simulation.DefaultQuantum = src.Simulation.DefaultQuantum
	}
	if len(src.Simulation.ComparePolicies) > 0 {
		m.config.Simulation.ComparePolicies = src.Simulation.ComparePolicies
	}
	if src.Simulation.Workers != 0 {
		m.config.Simulation.Workers = src.Simulation.Workers
	}

	if src.Output.Format != "" {
		m.config.Output.Format = src.Output.Format
	}
	if src.Output.Color != nil {
		m.config.Output.Color = src.Output.Color
	}
	if src.Output.XLSX != "" {
		m.config.Output.XLSX = src.Output.XLSX
	}

	if src.Logging.Level != "" {
		m.config.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		m.config.Logging.Format = src.Logging.Format
	}
}

// loadEnv loads configuration from environment variables.
func (m *Manager) loadEnv() error {
	// CPUSCHED_QUANTUM
	if v := m.getenv("CPUSCHED_QUANTUM"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CPUSCHED_QUANTUM: %w", err)
		}
		m.config.Simulation.DefaultQuantum = q
	}

	// CPUSCHED_FORMAT
	if v := m.getenv("CPUSCHED_FORMAT"); v != "" {
		m.config.Output.Format = strings.ToLower(v)
	}

	// CPUSCHED_LOG_LEVEL
	if v := m.getenv("CPUSCHED_LOG_LEVEL"); v != "" {
		m.config.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetPaths returns the paths that were loaded.
func (m *Manager) GetPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paths
}

// Save writes the current config to path, creating its directory.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(m.config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal returns the current config as YAML.
func (m *Manager) Marshal() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return yaml.Marshal(m.config)
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the minefield game server.
type Server struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
	MaxPlayers  int    `yaml:"max_players"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Maps
	MapsDir string   `yaml:"maps_dir"`
	Maps    []string `yaml:"maps"` // rotation, first entry is loaded at startup

	// Write queue / timeouts
	WriteTimeout  time.Duration `yaml:"write_timeout"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	SendQueueSize int           `yaml:"send_queue_size"`

	// Delay between death and respawn.
	RespawnTime time.Duration `yaml:"respawn_time"`

	// Role name → bcrypt hashes accepted by /login.
	Passwords map[string][]string `yaml:"passwords"`

	// Static lists shown to players; the minefield plugin adds its hints.
	Tips []string `yaml:"tips"`
	Motd []string `yaml:"motd"`
	Help []string `yaml:"help"`

	Minefield Minefield      `yaml:"minefield"`
	Stats     Stats          `yaml:"stats"`
	Database  DatabaseConfig `yaml:"database"`
}

// Minefield holds tunables of the minefield plugin.
type Minefield struct {
	TriggerDelay  time.Duration `yaml:"trigger_delay"`  // between hit and spawn
	Fuse          float32       `yaml:"fuse"`           // seconds, sent to clients
	DestroyRadius float32       `yaml:"destroy_radius"` // block-to-player proximity
	BlastRadius   float32       `yaml:"blast_radius"`   // lethal box around a detonation
	KillMessages  []string      `yaml:"kill_messages"`  // overrides built-in catalog when set
}

// Stats controls the mine-kill statistics log.
type Stats struct {
	Enabled   bool `yaml:"enabled"`
	QueueSize int  `yaml:"queue_size"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultMinefield returns the stock plugin tunables.
func DefaultMinefield() Minefield {
	return Minefield{
		TriggerDelay:  100 * time.Millisecond,
		Fuse:          0.1,
		DestroyRadius: 10,
		BlastRadius:   3,
	}
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		BindAddress:   "0.0.0.0",
		Port:          32887,
		MaxPlayers:    32,
		LogLevel:      "info",
		MapsDir:       "maps",
		Maps:          []string{"classicgen"},
		WriteTimeout:  5 * time.Second,
		ReadTimeout:   120 * time.Second,
		SendQueueSize: 256,
		RespawnTime:   5 * time.Second,
		Minefield:     DefaultMinefield(),
		Stats: Stats{
			Enabled:   false,
			QueueSize: 64,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "minefield",
			Password: "minefield",
			DBName:   "minefield",
			SSLMode:  "disable",
		},
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/automodemadmin/modemadm/lib/log"
)

const (
	DefaultTimeoutSeconds    = 15
	DefaultSessionTTLSeconds = 600
	DefaultAPIBind           = "127.0.0.1:8731"
)

type Config struct {
	General *GeneralConfig `toml:"general"`
	Modems  []*ModemConfig `toml:"modem"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	TimeoutSeconds    int    `toml:"timeout_seconds" validate:"omitempty,min=1,max=300"`
	SessionTTLSeconds int    `toml:"session_ttl_seconds" validate:"omitempty,min=1"`
	APIBind           string `toml:"api_bind" validate:"omitempty,hostname_port"`
}

// ModemConfig is one device profile. Flags override any of these fields.
type ModemConfig struct {
	Name       string            `toml:"name" validate:"required,profile_name"`
	Model      string            `toml:"model" validate:"required"`
	IPAddress  string            `toml:"ip_address" validate:"omitempty,ip"`
	Username   string            `toml:"username"`
	Password   string            `toml:"password"`
	IgnoreCert bool              `toml:"ignore_cert"`
	Endpoints  map[string]string `toml:"endpoints"`
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return &config, nil
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// FindModem returns the profile with the given name. An empty name is
// allowed when exactly one profile exists.
func (c *Config) FindModem(name string) (*ModemConfig, error) {
	if name == "" {
		if len(c.Modems) == 1 {
			return c.Modems[0], nil
		}
		return nil, fmt.Errorf("configuration has %d modem profiles, specify one with -name", len(c.Modems))
	}

	for _, m := range c.Modems {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("modem profile not found: %s", name)
}

func (c *Config) Timeout() time.Duration {
	if c.General == nil || c.General.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.General.TimeoutSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	if c.General == nil || c.General.SessionTTLSeconds <= 0 {
		return DefaultSessionTTLSeconds * time.Second
	}
	return time.Duration(c.General.SessionTTLSeconds) * time.Second
}

func (c *Config) APIBind() string {
	if c.General == nil || c.General.APIBind == "" {
		return DefaultAPIBind
	}
	return c.General.APIBind
}

package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// VaultEntry is the persisted form of one configured vault: identity, root
// path, display name, and the opaque access token granted when the vault was
// picked. Tokens are stored base64-encoded next to the record.
type VaultEntry struct {
	ID    string `yaml:"id"    json:"id"`
	Name  string `yaml:"name"  json:"name"`
	Path  string `yaml:"path"  json:"path"`
	Token string `yaml:"token,omitempty" json:"token,omitempty"`
}

type Config struct {
	Vaults     []*VaultEntry `yaml:"vaults"    json:"vaults"`
	LastUsedID string        `yaml:"last_used" json:"last_used"`

	path string `yaml:"-"`
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ensureInitialized()
	cfg.syncViper()

	return cfg, nil
}

func (cfg *Config) ensureInitialized() {
	if cfg.Vaults == nil {
		cfg.Vaults = []*VaultEntry{}
	}
	if cfg.LastUsedID == "" && len(cfg.Vaults) > 0 {
		cfg.LastUsedID = cfg.Vaults[0].ID
	}
}

func (cfg *Config) syncViper() {
	viper.Set("last_used", cfg.LastUsedID)
	if entry := cfg.Find(cfg.LastUsedID); entry != nil {
		viper.Set("vaultdir", entry.Path)
		viper.Set("vaultname", entry.Name)
	}
}

// Find returns the entry with the given identity, or nil.
func (cfg *Config) Find(id string) *VaultEntry {
	for _, entry := range cfg.Vaults {
		if entry.ID == id {
			return entry
		}
	}
	return nil
}

// FindByName returns the first entry whose name matches, or nil.
func (cfg *Config) FindByName(name string) *VaultEntry {
	for _, entry := range cfg.Vaults {
		if entry.Name == name {
			return entry
		}
	}
	return nil
}

// AddVault registers a new vault rooted at path and persists the registry.
// The display name defaults to the base of the path.
func (cfg *Config) AddVault(name, path string) (*VaultEntry, error) {
	path = filepath.Clean(path)
	if name == "" {
		name = filepath.Base(path)
	}

	if existing := cfg.FindByName(name); existing != nil {
		return nil, fmt.Errorf("vault %q already exists", name)
	}

	entry := &VaultEntry{
		ID:   newVaultID(),
		Name: name,
		Path: path,
	}
	cfg.Vaults = append(cfg.Vaults, entry)

	if cfg.LastUsedID == "" {
		cfg.LastUsedID = entry.ID
	}

	return entry, cfg.Save()
}

// RemoveVault deletes the entry and, when it was the last-used vault, points
// last-used at the first remaining record.
func (cfg *Config) RemoveVault(id string) error {
	idx := -1
	for i, entry := range cfg.Vaults {
		if entry.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("vault %q does not exist", id)
	}

	cfg.Vaults = append(cfg.Vaults[:idx], cfg.Vaults[idx+1:]...)
	if cfg.LastUsedID == id {
		cfg.LastUsedID = ""
		if len(cfg.Vaults) > 0 {
			cfg.LastUsedID = cfg.Vaults[0].ID
		}
	}

	return cfg.Save()
}

// SetLastUsed records the vault that should become current on next startup.
func (cfg *Config) SetLastUsed(id string) error {
	if cfg.Find(id) == nil {
		return fmt.Errorf("vault %q does not exist", id)
	}
	cfg.LastUsedID = id
	return cfg.Save()
}

// SetToken stores a vault's serialized access token.
func (cfg *Config) SetToken(id, token string) error {
	entry := cfg.Find(id)
	if entry == nil {
		return fmt.Errorf("vault %q does not exist", id)
	}
	entry.Token = token
	return cfg.Save()
}

func (cfg *Config) Save() error {
	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.path
	if configPath == "" {
		configPath = cfg.GetConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func (cfg *Config) GetConfigPath() string {
	if cfg.path != "" {
		return cfg.path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

// Identity values only need to be unique within one registry; eight random
// bytes keeps them short enough to type on the command line.
func newVaultID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "vault"
	}
	return hex.EncodeToString(buf)
}

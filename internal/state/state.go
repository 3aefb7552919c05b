package state

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/vaultray/internal/config"
	"github.com/Paintersrp/vaultray/internal/constants"
	"github.com/Paintersrp/vaultray/internal/debounce"
	"github.com/Paintersrp/vaultray/internal/handler"
	"github.com/Paintersrp/vaultray/internal/render"
	"github.com/Paintersrp/vaultray/internal/vault"
)

// State is the explicitly constructed application state: built once at
// startup, passed by reference to every command, released by Close. There
// are no package-level singletons behind it.
type State struct {
	Config    *config.Config
	Vaults    *vault.Registry
	Handler   *handler.FileHandler
	Renderer  *render.Renderer
	Notifier  *Notifier
	Scheduler *debounce.Scheduler
	Watcher   *VaultWatcher
	Home      string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	s := &State{
		Config:    cfg,
		Vaults:    vault.NewRegistry(cfg),
		Renderer:  render.NewRenderer(),
		Notifier:  NewNotifier(),
		Scheduler: debounce.NewScheduler(),
		Home:      home,
	}

	// A stale or missing vault is not fatal; commands degrade to an empty
	// view until a usable vault is selected.
	if err := s.Vaults.Restore(); err != nil {
		log.Printf("state: could not restore last-used vault: %v", err)
	}
	s.bindCurrentVault()

	return s, nil
}

// CurrentVault returns the active vault, or nil when none is usable.
func (s *State) CurrentVault() *vault.Vault {
	return s.Vaults.Current()
}

// RequireVault is the command-boundary guard for operations that need an
// active vault.
func (s *State) RequireVault() (*vault.Vault, error) {
	v := s.CurrentVault()
	if v == nil {
		return nil, errors.New("no vault is configured; run `vaultray vault add <path>` first")
	}
	return v, nil
}

// SwitchVault deactivates the current vault's handle, activates the target,
// rebinds the file handler and watcher, and publishes a refresh.
func (s *State) SwitchVault(id string) error {
	if err := s.Vaults.Switch(id); err != nil {
		return err
	}

	s.bindCurrentVault()
	s.Notifier.Publish()
	return nil
}

func (s *State) bindCurrentVault() {
	if s.Watcher != nil {
		_ = s.Watcher.Close()
		s.Watcher = nil
	}

	current := s.Vaults.Current()
	if current == nil {
		s.Handler = nil
		return
	}

	s.Handler = handler.NewFileHandler(current.Root())

	watcher, err := NewVaultWatcher(current.Root(), func(string) {
		s.Notifier.Publish()
	})
	if err != nil {
		log.Printf("state: vault watcher unavailable: %v", err)
		return
	}
	s.Watcher = watcher
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the watcher, pending timers, and the active vault handle.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.Scheduler != nil {
		s.Scheduler.Close()
	}
	if s.Vaults != nil {
		s.Vaults.Close()
	}

	return errors.Join(errs...)
}

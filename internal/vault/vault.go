package vault

import (
	"fmt"

	"github.com/Paintersrp/vaultray/internal/config"
)

// Vault pairs a persisted record with its live access handle.
type Vault struct {
	Record *config.VaultEntry
	Handle *AccessHandle
}

func (v *Vault) Root() string {
	return v.Record.Path
}

func (v *Vault) Name() string {
	return v.Record.Name
}

// Registry owns the configured vaults and the single current vault. At most
// one handle is active at a time; switching away deactivates the outgoing
// handle before the incoming one is touched.
type Registry struct {
	cfg     *config.Config
	current *Vault
}

func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{cfg: cfg}
}

// Restore activates the last-used vault, falling back to the first record
// when no last-used identity is set. A registry with no vaults restores to
// no current vault without error.
func (r *Registry) Restore() error {
	entry := r.cfg.Find(r.cfg.LastUsedID)
	if entry == nil && len(r.cfg.Vaults) > 0 {
		entry = r.cfg.Vaults[0]
	}
	if entry == nil {
		return nil
	}

	return r.Switch(entry.ID)
}

func (r *Registry) Current() *Vault {
	return r.current
}

// Entries exposes the persisted records for listing.
func (r *Registry) Entries() []*config.VaultEntry {
	return r.cfg.Vaults
}

// Add registers a root directory as a vault, persists its access token, and
// makes it current when no vault is active yet.
func (r *Registry) Add(name, path string) (*config.VaultEntry, error) {
	handle := NewAccessHandle(path)
	if err := handle.Activate(); err != nil {
		return nil, err
	}
	handle.Deactivate()

	entry, err := r.cfg.AddVault(name, path)
	if err != nil {
		return nil, err
	}
	if err := r.cfg.SetToken(entry.ID, handle.EncodedToken()); err != nil {
		return nil, err
	}

	if r.current == nil {
		if err := r.Switch(entry.ID); err != nil {
			return entry, err
		}
	}

	return entry, nil
}

// Remove deletes a vault record. Removing the current vault deactivates its
// handle and leaves no vault current.
func (r *Registry) Remove(id string) error {
	if r.current != nil && r.current.Record.ID == id {
		r.current.Handle.Deactivate()
		r.current = nil
	}
	return r.cfg.RemoveVault(id)
}

// Switch makes the identified vault current. The outgoing handle is always
// deactivated first; if the incoming vault cannot be activated the previous
// vault is reinstated and the error returned.
func (r *Registry) Switch(id string) error {
	entry := r.lookup(id)
	if entry == nil {
		return fmt.Errorf("vault %q does not exist", id)
	}

	previous := r.current
	if previous != nil {
		previous.Handle.Deactivate()
	}

	handle, err := ResolveAccessHandle(entry.Path, entry.Token)
	if err == nil {
		err = handle.Activate()
	}
	if err != nil {
		if previous != nil {
			if reErr := previous.Handle.Activate(); reErr == nil {
				r.current = previous
			} else {
				r.current = nil
			}
		}
		return err
	}

	r.current = &Vault{Record: entry, Handle: handle}
	return r.cfg.SetLastUsed(entry.ID)
}

// lookup accepts either an identity or a display name.
func (r *Registry) lookup(id string) *config.VaultEntry {
	if entry := r.cfg.Find(id); entry != nil {
		return entry
	}
	return r.cfg.FindByName(id)
}

// Close deactivates the current handle.
func (r *Registry) Close() {
	if r.current != nil {
		r.current.Handle.Deactivate()
		r.current = nil
	}
}

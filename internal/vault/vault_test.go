package vault_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Paintersrp/vaultray/internal/config"
	"github.com/Paintersrp/vaultray/internal/vault"
)

func newRegistry(t *testing.T) *vault.Registry {
	t.Helper()
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("failed to ensure config: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return vault.NewRegistry(cfg)
}

func TestAddActivatesFirstVault(t *testing.T) {
	r := newRegistry(t)
	root := t.TempDir()

	entry, err := r.Add("first", root)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if entry.Token == "" {
		t.Fatalf("no access token persisted")
	}

	current := r.Current()
	if current == nil || current.Name() != "first" {
		t.Fatalf("first vault should become current")
	}
	if !current.Handle.Active() {
		t.Fatalf("current vault's handle should be active")
	}
}

func TestAddRejectsMissingRoot(t *testing.T) {
	r := newRegistry(t)
	if _, err := r.Add("ghost", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("missing root accepted")
	}
}

func TestAddRejectsFileRoot(t *testing.T) {
	r := newRegistry(t)
	path := filepath.Join(t.TempDir(), "file.md")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := r.Add("file", path); err == nil {
		t.Fatalf("file root accepted")
	}
}

func TestSwitchDeactivatesOutgoingHandle(t *testing.T) {
	r := newRegistry(t)

	if _, err := r.Add("a", t.TempDir()); err != nil {
		t.Fatalf("add a failed: %v", err)
	}
	if _, err := r.Add("b", t.TempDir()); err != nil {
		t.Fatalf("add b failed: %v", err)
	}

	a := r.Current()
	if a.Name() != "a" {
		t.Fatalf("expected a current, got %q", a.Name())
	}

	if err := r.Switch("b"); err != nil {
		t.Fatalf("switch failed: %v", err)
	}

	if a.Handle.Active() {
		t.Fatalf("outgoing handle still active after switch")
	}
	b := r.Current()
	if b.Name() != "b" || !b.Handle.Active() {
		t.Fatalf("incoming vault not active")
	}
}

func TestFailedSwitchReinstatesPrevious(t *testing.T) {
	r := newRegistry(t)

	if _, err := r.Add("good", t.TempDir()); err != nil {
		t.Fatalf("add good failed: %v", err)
	}

	badRoot := t.TempDir()
	if _, err := r.Add("bad", badRoot); err != nil {
		t.Fatalf("add bad failed: %v", err)
	}
	if err := r.Switch("good"); err != nil {
		t.Fatalf("switch to good failed: %v", err)
	}
	if err := os.RemoveAll(badRoot); err != nil {
		t.Fatalf("failed to remove bad root: %v", err)
	}

	if err := r.Switch("bad"); err == nil {
		t.Fatalf("switch to a vanished root should fail")
	}

	current := r.Current()
	if current == nil || current.Name() != "good" {
		t.Fatalf("previous vault not reinstated")
	}
	if !current.Handle.Active() {
		t.Fatalf("reinstated vault should be active")
	}
}

func TestSwitchByName(t *testing.T) {
	r := newRegistry(t)

	if _, err := r.Add("alpha", t.TempDir()); err != nil {
		t.Fatalf("add alpha failed: %v", err)
	}
	if _, err := r.Add("beta", t.TempDir()); err != nil {
		t.Fatalf("add beta failed: %v", err)
	}

	if err := r.Switch("beta"); err != nil {
		t.Fatalf("switch by name failed: %v", err)
	}
	if r.Current().Name() != "beta" {
		t.Fatalf("wrong current vault %q", r.Current().Name())
	}
}

func TestSwitchUnknownVault(t *testing.T) {
	r := newRegistry(t)
	if err := r.Switch("missing"); err == nil {
		t.Fatalf("unknown vault accepted")
	}
}

func TestRemoveCurrentClearsSelection(t *testing.T) {
	r := newRegistry(t)

	entry, err := r.Add("solo", t.TempDir())
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	handle := r.Current().Handle
	if err := r.Remove(entry.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if r.Current() != nil {
		t.Fatalf("removed vault still current")
	}
	if handle.Active() {
		t.Fatalf("removed vault's handle still active")
	}
}

func TestRestorePrefersLastUsed(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("failed to ensure config: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	r := vault.NewRegistry(cfg)
	if _, err := r.Add("one", t.TempDir()); err != nil {
		t.Fatalf("add one failed: %v", err)
	}
	if _, err := r.Add("two", t.TempDir()); err != nil {
		t.Fatalf("add two failed: %v", err)
	}
	if err := r.Switch("two"); err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	r.Close()

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	fresh := vault.NewRegistry(reloaded)
	if err := fresh.Restore(); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if fresh.Current() == nil || fresh.Current().Name() != "two" {
		t.Fatalf("restore should reactivate the last-used vault")
	}
}

func TestRestoreWithNoVaults(t *testing.T) {
	r := newRegistry(t)
	if err := r.Restore(); err != nil {
		t.Fatalf("empty restore errored: %v", err)
	}
	if r.Current() != nil {
		t.Fatalf("empty registry restored a vault")
	}
}

func TestResolveAccessHandleRoundTrip(t *testing.T) {
	root := t.TempDir()
	minted := vault.NewAccessHandle(root)

	resolved, err := vault.ResolveAccessHandle(root, minted.EncodedToken())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if err := resolved.Activate(); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if !resolved.Active() {
		t.Fatalf("handle should report active")
	}

	resolved.Deactivate()
	if resolved.Active() {
		t.Fatalf("handle should report inactive after deactivate")
	}
}

func TestResolveAccessHandleRejectsGarbageToken(t *testing.T) {
	if _, err := vault.ResolveAccessHandle(t.TempDir(), "%%%not-base64%%%"); err == nil {
		t.Fatalf("garbage token accepted")
	}
}

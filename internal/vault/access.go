package vault

import (
	"encoding/base64"
	"fmt"
	"os"
)

// AccessHandle is the capability that guards filesystem access to a vault
// root. On sandboxed platforms the original tool resolves a security-scoped
// bookmark here; on regular targets the token is just the root path and
// Activate only verifies the directory is still reachable.
type AccessHandle struct {
	root   string
	token  []byte
	active bool
}

// NewAccessHandle mints a handle (and token) for a freshly picked root.
func NewAccessHandle(root string) *AccessHandle {
	return &AccessHandle{root: root, token: []byte(root)}
}

// ResolveAccessHandle rebuilds a handle from a persisted token. An empty
// token degrades to the recorded root path.
func ResolveAccessHandle(root, encoded string) (*AccessHandle, error) {
	if encoded == "" {
		return NewAccessHandle(root), nil
	}

	token, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("stale access token: %w", err)
	}

	return &AccessHandle{root: root, token: token}, nil
}

// EncodedToken returns the serialized token for persistence.
func (h *AccessHandle) EncodedToken() string {
	return base64.StdEncoding.EncodeToString(h.token)
}

// Activate makes the root usable. Tree loads must not be attempted against
// an inactive handle.
func (h *AccessHandle) Activate() error {
	target := string(h.token)
	if target == "" {
		target = h.root
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("vault root is not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault root %q is not a directory", target)
	}

	h.active = true
	return nil
}

func (h *AccessHandle) Deactivate() {
	if h == nil {
		return
	}
	h.active = false
}

func (h *AccessHandle) Active() bool {
	return h != nil && h.active
}

package constants

import "time"

const (
	Version        = `0.1.0`
	ConfigFile     = `vaultray`
	ConfigFileType = `yaml`
	ConfigDir      = `/.vaultray/`

	// Delay before a hover-selected note is rendered into the preview pane.
	PreviewDebounce = 300 * time.Millisecond

	// Quiet period after the last keystroke before the editor persists.
	AutoSaveDebounce = time.Second
)

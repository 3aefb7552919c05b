// Package obsidian builds and dispatches outbound obsidian:// URIs. Calls
// are fire-and-forget; the host application never reports back.
package obsidian

import (
	"net/url"
	"strings"
)

// OpenURI addresses a note by vault name and vault-relative path. The host
// application expects the path's separators as the literal sequence %2F
// inside an otherwise unencoded file parameter, which is why the path is
// not run through normal query escaping.
func OpenURI(vaultName, relPath string) string {
	file := strings.ReplaceAll(relPath, "/", "%2F")
	return "obsidian://open?vault=" + url.QueryEscape(vaultName) + "&file=" + file
}

// NewURI creates a note with the given name in the named vault.
func NewURI(vaultName, name string) string {
	return "obsidian://new?vault=" + url.QueryEscape(vaultName) + "&name=" + url.QueryEscape(name)
}

// DailyURI opens (creating if needed) today's daily note.
func DailyURI(vaultName string) string {
	return "obsidian://daily?vault=" + url.QueryEscape(vaultName)
}

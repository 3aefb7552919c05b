package browse

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/internal/tui/browser"
)

func NewCmdBrowse(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Browse the current vault in the quick-access TUI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return browser.Run(s)
		},
	}
}

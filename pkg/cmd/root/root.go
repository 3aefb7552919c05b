package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/pkg/cmd/browse"
	"github.com/Paintersrp/vaultray/pkg/cmd/new"
	"github.com/Paintersrp/vaultray/pkg/cmd/open"
	"github.com/Paintersrp/vaultray/pkg/cmd/preview"
	"github.com/Paintersrp/vaultray/pkg/cmd/search"
	"github.com/Paintersrp/vaultray/pkg/cmd/today"
	"github.com/Paintersrp/vaultray/pkg/cmd/toggle"
	"github.com/Paintersrp/vaultray/pkg/cmd/tree"
	"github.com/Paintersrp/vaultray/pkg/cmd/vault"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var vaultFlag string

	cmd := &cobra.Command{
		Use:   "vaultray",
		Short: "Quick-access browsing, searching, and editing for an Obsidian vault.",
		Long: `A quick-access companion for an Obsidian vault: browse and filter the
  vault tree, preview notes, make light edits with auto-save, and hand off
  to Obsidian through its URL scheme.
  `,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if vaultFlag != "" {
				return s.SwitchVault(vaultFlag)
			}
			return nil
		},
		RunE: browse.NewCmdBrowse(s).RunE,
	}

	cmd.PersistentFlags().
		StringVar(&vaultFlag, "vault", "", "Vault name or id to use for this invocation")
	viper.BindPFlag("vault", cmd.PersistentFlags().Lookup("vault"))

	cmd.AddCommand(browse.NewCmdBrowse(s))
	cmd.AddCommand(vault.NewCmdVault(s))
	cmd.AddCommand(preview.NewCmdPreview(s))
	cmd.AddCommand(search.NewCmdSearch(s))
	cmd.AddCommand(tree.NewCmdTree(s))
	cmd.AddCommand(open.NewCmdOpen(s))
	cmd.AddCommand(today.NewCmdToday(s))
	cmd.AddCommand(new.NewCmdNew(s))
	cmd.AddCommand(toggle.NewCmdToggle(s))

	return cmd, nil
}

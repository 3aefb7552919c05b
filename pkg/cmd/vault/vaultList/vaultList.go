package vaultList

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdVaultList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured vaults.",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := s.CurrentVault()
			for _, entry := range s.Vaults.Entries() {
				marker := " "
				if current != nil && current.Record.ID == entry.ID {
					marker = "*"
				}
				cmd.Printf("%s %s  %s  %s\n", marker, entry.ID, entry.Name, entry.Path)
			}
			return nil
		},
	}
}

package vaultRemove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdVaultRemove(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name or id]",
		Short: "Remove a vault from the registry.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := s.Config.Find(args[0])
			if entry == nil {
				entry = s.Config.FindByName(args[0])
			}
			if entry == nil {
				return fmt.Errorf("vault %q does not exist", args[0])
			}

			if err := s.Vaults.Remove(entry.ID); err != nil {
				return err
			}

			cmd.Printf("Removed vault %s\n", entry.Name)
			return nil
		},
	}
}

package vaultChange

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdVaultChange(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "change [name or id]",
		Aliases: []string{"switch"},
		Short:   "Make another vault current.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.SwitchVault(args[0]); err != nil {
				return err
			}

			cmd.Printf("Current vault is now %s\n", s.CurrentVault().Name())
			return nil
		},
	}
}

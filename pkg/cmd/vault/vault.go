package vault

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/pkg/cmd/vault/vaultAdd"
	"github.com/Paintersrp/vaultray/pkg/cmd/vault/vaultChange"
	"github.com/Paintersrp/vaultray/pkg/cmd/vault/vaultList"
	"github.com/Paintersrp/vaultray/pkg/cmd/vault/vaultRemove"
)

func NewCmdVault(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vault",
		Aliases: []string{"v"},
		Short:   "Manage configured vaults.",
	}

	cmd.AddCommand(vaultAdd.NewCmdVaultAdd(s))
	cmd.AddCommand(vaultRemove.NewCmdVaultRemove(s))
	cmd.AddCommand(vaultChange.NewCmdVaultChange(s))
	cmd.AddCommand(vaultList.NewCmdVaultList(s))

	return cmd
}

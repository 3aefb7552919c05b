package vaultAdd

import (
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdVaultAdd(s *state.State) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add [path]",
		Short: "Register an existing directory as a vault.",
		Long: heredoc.Doc(`
			Register an existing directory as a vault. The first vault added
			becomes the current vault.

			Examples:
			  vaultray vault add ~/notes
			  vaultray vault add ~/work/notes --name work
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			entry, err := s.Vaults.Add(name, path)
			if err != nil {
				return err
			}

			cmd.Printf("Added vault %s (%s)\n", entry.Name, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name for the vault (defaults to the directory name)")
	return cmd
}

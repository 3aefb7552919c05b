package search

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/internal/vault"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "search [terms...]",
		Aliases: []string{"s"},
		Short:   "Search vault file names.",
		Long: heredoc.Doc(`
			Filter the vault's files by name. Every term must appear in the file
			name (case-insensitive, any order); directories are transparent.

			Examples:
			  vaultray search proj notes
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := s.RequireVault()
			if err != nil {
				return err
			}

			forest := vault.LoadTree(current.Root())
			for _, node := range vault.Search(forest, strings.Join(args, " ")) {
				cmd.Println(node.RelPath)
			}
			return nil
		},
	}
}

package tree

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/internal/vault"
)

func NewCmdTree(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the vault tree in display order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := s.RequireVault()
			if err != nil {
				return err
			}

			forest := vault.SortForest(vault.LoadTree(current.Root()))
			var print func(nodes []*vault.FileNode, depth int)
			print = func(nodes []*vault.FileNode, depth int) {
				for _, node := range nodes {
					name := node.Name
					if node.IsDir {
						name += "/"
					}
					cmd.Println(strings.Repeat("  ", depth) + name)
					if node.IsDir {
						print(node.Children, depth+1)
					}
				}
			}
			print(forest, 0)
			return nil
		},
	}
}

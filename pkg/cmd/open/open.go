package open

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/fzf"
	"github.com/Paintersrp/vaultray/internal/obsidian"
	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:     "open [note]",
		Aliases: []string{"o"},
		Short:   "Open a note in Obsidian.",
		Long: heredoc.Doc(`
			Open a note in Obsidian by vault-relative path. With no argument a
			fuzzy finder picks the note interactively.

			Examples:
			  vaultray open inbox/ideas.md
			  vaultray open
			  vaultray open inbox/ideas.md --copy
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := s.RequireVault()
			if err != nil {
				return err
			}

			var rel string
			if len(args) == 1 {
				rel = args[0]
			} else {
				finder := fzf.NewFuzzyFinder(s.Handler, "Open in Obsidian")
				rel, err = finder.Pick("")
				if err != nil {
					return err
				}
			}

			uri := obsidian.OpenURI(current.Name(), rel)
			return obsidian.Dispatch(uri, copyFlag)
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the obsidian:// URI to the clipboard instead of launching it")
	return cmd
}

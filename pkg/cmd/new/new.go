package new

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/obsidian"
	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:     "new [name]",
		Aliases: []string{"n"},
		Short:   "Create a note in the current vault via Obsidian.",
		Long: heredoc.Doc(`
			Create a new note in the current vault through Obsidian's URL
			scheme. Obsidian opens the created note.

			Examples:
			  vaultray new "Meeting notes"
			  vaultray new inbox/ideas
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := s.RequireVault()
			if err != nil {
				return err
			}

			return obsidian.Dispatch(obsidian.NewURI(current.Name(), args[0]), copyFlag)
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the obsidian:// URI to the clipboard instead of launching it")
	return cmd
}

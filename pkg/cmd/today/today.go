package today

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/obsidian"
	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdToday(s *state.State) *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:     "today [date]",
		Aliases: []string{"t"},
		Short:   "Open the daily note in Obsidian.",
		Long: heredoc.Doc(`
			Open today's daily note in Obsidian. An optional date argument opens
			that day's note instead; most common date formats are accepted.

			Examples:
			  vaultray today
			  vaultray today 2024-06-01
			  vaultray today "June 1, 2024"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := s.RequireVault()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return obsidian.Dispatch(obsidian.DailyURI(current.Name()), copyFlag)
			}

			day, err := dateparse.ParseLocal(args[0])
			if err != nil {
				return fmt.Errorf("unrecognized date %q: %w", args[0], err)
			}

			rel := day.Format("2006-01-02") + ".md"
			return obsidian.Dispatch(obsidian.OpenURI(current.Name(), rel), copyFlag)
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the obsidian:// URI to the clipboard instead of launching it")
	return cmd
}

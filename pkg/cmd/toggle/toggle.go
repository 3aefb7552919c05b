package toggle

import (
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/state"
	"github.com/Paintersrp/vaultray/internal/tasks"
)

func NewCmdToggle(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [note] [line] [on|off]",
		Short: "Toggle a task checkbox on a note line.",
		Long: heredoc.Doc(`
			Toggle the first task checkbox on the given zero-based line of a
			note. Line numbers beyond the end of the file are ignored.

			Examples:
			  vaultray toggle inbox/todo.md 3 on
			  vaultray toggle inbox/todo.md 3 off
		`),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.RequireVault(); err != nil {
				return err
			}

			line, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}

			checked := args[2] == "on"
			path := s.Handler.Abs(args[0])
			if err := tasks.Toggle(s.Handler, path, line, checked); err != nil {
				return err
			}

			s.Notifier.Publish()
			return nil
		},
	}
}

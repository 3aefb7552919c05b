package preview

import (
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/vaultray/internal/obsidian"
	"github.com/Paintersrp/vaultray/internal/state"
)

func NewCmdPreview(s *state.State) *cobra.Command {
	var outFlag string
	var openFlag bool

	cmd := &cobra.Command{
		Use:   "preview [note]",
		Short: "Render a note as a themed HTML document.",
		Long: heredoc.Doc(`
			Render a note through the table and task-list preprocessors into a
			complete themed HTML document. By default the document is printed to
			stdout.

			Examples:
			  vaultray preview inbox/ideas.md
			  vaultray preview inbox/ideas.md --out ideas.html
			  vaultray preview inbox/ideas.md --open
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := s.RequireVault(); err != nil {
				return err
			}

			path := s.Handler.Abs(args[0])
			content, err := s.Handler.ReadNote(path)
			if err != nil {
				return err
			}

			doc := s.Renderer.Document(filepath.Base(path), content)

			switch {
			case openFlag:
				out := outFlag
				if out == "" {
					out = filepath.Join(os.TempDir(), "vaultray-preview.html")
				}
				if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
					return err
				}
				return obsidian.Launch(out)
			case outFlag != "":
				return os.WriteFile(outFlag, []byte(doc), 0o644)
			default:
				cmd.Print(doc)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().BoolVar(&openFlag, "open", false, "Open the rendered document in the default browser")
	return cmd
}

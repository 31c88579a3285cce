package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/spf13/cobra"
)

var (
	editHTML string
	editCSS  string
	editJS   string
	editMD   string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace fields of the current project from files",
	Long:  `Replace the html, css, javascript or markdown of the current project with the contents of a file. Use - to read from stdin.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sources := []struct {
			field document.Field
			file  string
		}{
			{document.FieldMarkup, editHTML},
			{document.FieldStyle, editCSS},
			{document.FieldScript, editJS},
			{document.FieldNotes, editMD},
		}
		fields := document.Fields{}
		stdinUsed := false
		for _, src := range sources {
			if src.file == "" {
				continue
			}
			var b []byte
			var err error
			if src.file == "-" {
				if stdinUsed {
					return fmt.Errorf("only one field can be read from stdin")
				}
				stdinUsed = true
				b, err = io.ReadAll(cmd.InOrStdin())
			} else {
				b, err = os.ReadFile(src.file)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", src.field, err)
			}
			fields[src.field] = string(b)
		}
		if len(fields) == 0 {
			return fmt.Errorf("specify at least one of --html, --css, --js or --md")
		}

		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		s.editor.Doc.Merge(fields)
		if err := s.editor.Persist(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("✓ %s: %s\n", s.msgs.Saved, s.editor.Binder.Pathname())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editHTML, "html", "", "file with the html markup")
	editCmd.Flags().StringVar(&editCSS, "css", "", "file with the stylesheet")
	editCmd.Flags().StringVar(&editJS, "js", "", "file with the script")
	editCmd.Flags().StringVar(&editMD, "md", "", "file with the markdown notes")
}

package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/KaramelBytes/fronteditor-cli/internal/fepack"
	"github.com/KaramelBytes/fronteditor-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	showField string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current project",
	Long:  `Print the current project as JSON, or the raw text of one field with --field.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showField != "" && !document.Field(showField).Valid() {
			return fmt.Errorf("invalid field: %s (use html, css, javascript or markdown)", showField)
		}
		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		if showField != "" {
			fmt.Fprint(out, s.editor.Doc.Get(document.Field(showField)))
			return nil
		}
		b, err := utils.PrettyJSON(fepack.New(s.editor.Doc, s.editor.Path()))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showField, "field", "f", "", "print only this field: html, css, javascript or markdown")
}

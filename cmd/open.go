package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <path|name>",
	Short: "Make a saved project the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		entry, err := s.editor.Index.Find(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := s.editor.OpenProject(cmd.Context(), entry); err != nil {
			return err
		}
		fmt.Printf("✓ %s: %s (%s)\n", s.msgs.Opened, entry.Name, navigation.Pathname(entry.Path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}

package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <path>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved project from the local store",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.editor.Index.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		if navigation.NormalizePath(args[0]) == s.editor.Path() {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %s\n", s.msgs.RemovedCurrent)
		}
		fmt.Printf("✓ %s: %s\n", s.msgs.Removed, navigation.Pathname(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

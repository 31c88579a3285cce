package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Long:  `List the projects kept in the local store. The current project is marked with *.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.editor.Projects(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, s.msgs.NoProjects)
			return nil
		}
		current := s.editor.Path()
		for _, e := range entries {
			mark := "-"
			if navigation.NormalizePath(e.Path) == current {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %s (%s)\n", mark, e.Name, navigation.Pathname(e.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

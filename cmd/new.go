package cmd

import (
	"fmt"

	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	newName string
)

var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Start a new empty project",
	Long:  `Start a new empty project at path and make it the current one. Without a path a random one is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := uuid.NewString()
		if len(args) == 1 {
			path = args[0]
		}
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.editor.NewProject(cmd.Context(), path, newName); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %s\n", s.msgs.Created, navigation.Pathname(path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newName, "name", "n", "", "project name shown by list")
}

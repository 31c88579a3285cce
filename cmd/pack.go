package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/fronteditor-cli/internal/fepack"
	"github.com/spf13/cobra"
)

var (
	packOut      string
	packKeepPath bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Save or load the current project as a " + fepack.Extension + " file",
}

var packSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the current project and its path to a pack file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		out := packOut
		if out == "" {
			out = filepath.Join(cfg.DownloadsDir, fepack.FileName(s.editor.Path()))
		}
		if err := s.editor.SavePack(cmd.Context(), fepack.FileTransport{Path: out}); err != nil {
			return err
		}
		fmt.Printf("✓ %s: %s\n", s.msgs.PackSaved, out)
		return nil
	},
}

var packLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Replace the current project with a pack file",
	Long: `Replace the current project with the contents of a pack file and switch to the path it carries.
With --keep-path the current location is kept and the pack data is stored under it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		t := fepack.FileTransport{Path: args[0], KeepPath: packKeepPath}
		if err := s.editor.LoadPack(cmd.Context(), t); err != nil {
			return err
		}
		fmt.Printf("✓ %s: %s\n", s.msgs.Opened, s.editor.Binder.Pathname())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.AddCommand(packSaveCmd)
	packCmd.AddCommand(packLoadCmd)
	packSaveCmd.Flags().StringVarP(&packOut, "out", "o", "", "output file (default is downloads_dir/"+fepack.FileName("<path>")+")")
	packLoadCmd.Flags().BoolVar(&packKeepPath, "keep-path", false, "keep the current location instead of the pack's path")
}

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/fronteditor-cli/internal/archive"
	"github.com/KaramelBytes/fronteditor-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	zipOutDir string
)

var zipCmd = &cobra.Command{
	Use:   "zip",
	Short: "Move the current project in and out of zip archives",
}

var zipDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Write the current project as a zip archive",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		dir := zipOutDir
		if dir == "" {
			dir = cfg.DownloadsDir
		}
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("ensure downloads dir: %w", err)
		}
		now := time.Now()
		var buf bytes.Buffer
		if err := s.editor.DownloadArchive(&buf, now); err != nil {
			return err
		}
		out := filepath.Join(dir, archive.FileName(now))
		if err := utils.SafeWriteFile(out, buf.Bytes()); err != nil {
			return err
		}
		fmt.Printf("✓ %s: %s\n", s.msgs.ArchiveSaved, out)
		return nil
	},
}

var zipUploadCmd = &cobra.Command{
	Use:   "upload <file.zip>",
	Short: "Merge a zip archive into the current project",
	Long:  `Merge the index.* entries of a zip archive into the current project. Fields the archive does not carry keep their text.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.editor.UploadArchive(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Printf("✓ %s: %s\n", s.msgs.Saved, s.editor.Binder.Pathname())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zipCmd)
	zipCmd.AddCommand(zipDownloadCmd)
	zipCmd.AddCommand(zipUploadCmd)
	zipDownloadCmd.Flags().StringVarP(&zipOutDir, "out", "o", "", "output directory (default is downloads_dir)")
}
